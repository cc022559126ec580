package main

import (
	"strings"
	"testing"

	"glowlife/internal/sims/life"
)

func TestRunScenarioOutcomes(t *testing.T) {
	cases := []struct {
		name string
		seed string
		want string
	}{
		{"empty", "", "extinct at 1"},
		{"block", "0000" + "0110" + "0110" + "0000", "still life at 0"},
		{"blinker", "00000" + "00100" + "00100" + "00100" + "00000", "period 2 from 0"},
	}
	for _, tc := range cases {
		size := 4
		if tc.name == "blinker" || tc.name == "empty" {
			size = 5
		}
		res, err := runScenario(scenario{name: tc.name, seed: tc.seed}, size, 50)
		if err != nil {
			t.Fatal(err)
		}
		if got := res.outcome(); got != tc.want {
			t.Fatalf("%s outcome = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRunScenarioLetters(t *testing.T) {
	seed, _ := life.Seed("letters")
	res, err := runScenario(scenario{name: "letters", seed: seed}, life.DefaultSize, 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.peakPopulation == 0 || res.steps == 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := runScenario(scenario{name: "bad", seed: "abc"}, 3, 1); err == nil || !strings.Contains(err.Error(), "invalid") {
		t.Fatalf("bad seed error = %v", err)
	}
}
