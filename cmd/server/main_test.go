package main

import (
	"testing"

	"verdant/internal/adapter/policy/scripted"
	"verdant/internal/app/behavior"
)

func TestIntEnv(t *testing.T) {
	t.Setenv("TICK_MS", "")
	if got := intEnv("TICK_MS", 50); got != 50 {
		t.Fatalf("expected fallback 50, got %d", got)
	}
	t.Setenv("TICK_MS", "100")
	if got := intEnv("TICK_MS", 50); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	t.Setenv("TICK_MS", "not-a-number")
	if got := intEnv("TICK_MS", 50); got != 50 {
		t.Fatalf("expected fallback on garbage, got %d", got)
	}
}

func TestInt64Env(t *testing.T) {
	t.Setenv("SEED", "12345")
	if got := int64Env("SEED", 1); got != 12345 {
		t.Fatalf("expected 12345, got %d", got)
	}
	t.Setenv("SEED", "")
	if got := int64Env("SEED", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}

func TestBuildPolicySelection(t *testing.T) {
	t.Setenv("BEHAVIOR_POLICY", "scripted")
	if _, ok := buildPolicy(nil).(scripted.Policy); !ok {
		t.Fatalf("expected scripted policy")
	}
	t.Setenv("BEHAVIOR_POLICY", "none")
	if got := buildPolicy(nil); got != nil {
		t.Fatalf("expected nil policy, got %T", got)
	}
	t.Setenv("BEHAVIOR_POLICY", "")
	if _, ok := buildPolicy(nil).(behavior.RulePolicy); !ok {
		t.Fatalf("expected rule policy by default")
	}
}
