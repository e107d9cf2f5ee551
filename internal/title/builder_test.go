package title

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/agency-title/internal/agency"
)

func testConfiguration() agency.Configuration {
	return agency.Configuration{
		Defaults: agency.BuiltinDefaults(),
		JobTypes: map[string]agency.Fields{
			"refactor": {
				TitleBase:        "Refactor Bot",
				SkillLevel:       "Senior",
				DurationEstimate: "30-60 minutes",
				ShortDescription: "Restructures code without changing behaviour",
			},
			"docs": {
				TitleBase: "Docs Bot",
			},
		},
	}
}

func TestBuildUsesFullOverride(t *testing.T) {
	t.Parallel()

	cfg := testConfiguration()
	got := NewBuilder(zaptest.NewLogger(t)).Build(Request{
		JobType:               "refactor",
		TargetEnvironment:     "production",
		HasInterestingChanges: "true",
	}, cfg)

	want := Metadata{
		Title:            "Refactor Bot (Production) Change-Driven",
		SkillLevel:       "Senior",
		DurationEstimate: "30-60 minutes",
		ShortDescription: "Restructures code without changing behaviour",
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestBuildPartialOverrideFallsBackPerField(t *testing.T) {
	t.Parallel()

	cfg := testConfiguration()
	got := NewBuilder(zaptest.NewLogger(t)).Build(Request{JobType: "docs"}, cfg)

	if got.Title != "Docs Bot" {
		t.Fatalf("unexpected title %q", got.Title)
	}
	if got.SkillLevel != cfg.Defaults.SkillLevel ||
		got.DurationEstimate != cfg.Defaults.DurationEstimate ||
		got.ShortDescription != cfg.Defaults.ShortDescription {
		t.Fatalf("expected default metadata, got %+v", got)
	}
}

func TestBuildUnknownJobType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		jobType  string
		warnings int
	}{
		{name: "MissingKey", jobType: "deploy", warnings: 1},
		{name: "EmptyJobType", jobType: "", warnings: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zap.InfoLevel)
			cfg := testConfiguration()
			got := NewBuilder(zap.New(core)).Build(Request{
				JobType:               tc.jobType,
				TargetEnvironment:     Unknown,
				HasInterestingChanges: Unknown,
			}, cfg)

			want := Metadata{
				Title:            cfg.Defaults.TitleBase,
				SkillLevel:       cfg.Defaults.SkillLevel,
				DurationEstimate: cfg.Defaults.DurationEstimate,
				ShortDescription: cfg.Defaults.ShortDescription,
			}
			if got != want {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
			if n := logs.FilterLevelExact(zap.WarnLevel).Len(); n != tc.warnings {
				t.Fatalf("expected %d warnings, got %d", tc.warnings, n)
			}
		})
	}
}

func TestBuildDefaultsOptionalInputs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	got := NewBuilder(zap.New(core)).Build(Request{JobType: "refactor"}, testConfiguration())
	if got.Title != "Refactor Bot" {
		t.Fatalf("expected bare title base, got %q", got.Title)
	}

	entries := logs.FilterMessage("resolved job metadata").All()
	if len(entries) != 1 {
		t.Fatalf("expected one metadata log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["target_environment"] != Unknown || fields["has_interesting_changes"] != Unknown {
		t.Fatalf("expected optional inputs to default to %q, got %v", Unknown, fields)
	}
}
