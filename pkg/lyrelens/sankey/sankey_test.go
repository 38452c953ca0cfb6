package sankey

import (
	"reflect"
	"testing"
)

func TestBuildConnectsLabelsToWords(t *testing.T) {
	labels := []string{"songA", "songB"}
	words := []string{"love", "hate"}
	counts := map[string]map[string]int{
		"songA": {"love": 3},
		"songB": {"love": 1, "hate": 2},
	}

	flow := Build(labels, words, counts)

	wantNodes := []string{"songA", "songB", "love", "hate"}
	if !reflect.DeepEqual(flow.NodeLabels, wantNodes) {
		t.Fatalf("node labels = %v, want %v", flow.NodeLabels, wantNodes)
	}
	if !reflect.DeepEqual(flow.Sources, []int{0, 1, 1}) {
		t.Fatalf("sources = %v", flow.Sources)
	}
	if !reflect.DeepEqual(flow.Targets, []int{2, 2, 3}) {
		t.Fatalf("targets = %v", flow.Targets)
	}
	if !reflect.DeepEqual(flow.Values, []int{3, 1, 2}) {
		t.Fatalf("values = %v", flow.Values)
	}
	if flow.Links() != 3 {
		t.Fatalf("links = %d, want 3", flow.Links())
	}
}

func TestBuildSkipsZeroCountWords(t *testing.T) {
	flow := Build(
		[]string{"a"},
		[]string{"present", "missing"},
		map[string]map[string]int{"a": {"present": 2}},
	)
	if flow.Links() != 1 {
		t.Fatalf("links = %d, want 1", flow.Links())
	}
	if flow.NodeLabels[flow.Targets[0]] != "present" {
		t.Fatalf("target = %q", flow.NodeLabels[flow.Targets[0]])
	}
}

func TestBuildDedupesWords(t *testing.T) {
	flow := Build(
		[]string{"a"},
		[]string{"echo", "echo", "other"},
		map[string]map[string]int{"a": {"echo": 4, "other": 1}},
	)
	wantNodes := []string{"a", "echo", "other"}
	if !reflect.DeepEqual(flow.NodeLabels, wantNodes) {
		t.Fatalf("node labels = %v, want %v", flow.NodeLabels, wantNodes)
	}
	if flow.Links() != 2 {
		t.Fatalf("links = %d, want 2", flow.Links())
	}
}

func TestBuildLabelWithoutCounts(t *testing.T) {
	flow := Build(
		[]string{"silent", "loud"},
		[]string{"word"},
		map[string]map[string]int{"loud": {"word": 7}},
	)
	if flow.Links() != 1 {
		t.Fatalf("links = %d, want 1", flow.Links())
	}
	if flow.NodeLabels[flow.Sources[0]] != "loud" {
		t.Fatalf("source = %q", flow.NodeLabels[flow.Sources[0]])
	}
}

func TestBuildEmptyLabels(t *testing.T) {
	flow := Build(nil, []string{"w"}, nil)
	if flow.Links() != 0 {
		t.Fatalf("links = %d, want 0", flow.Links())
	}
	if !reflect.DeepEqual(flow.NodeLabels, []string{"w"}) {
		t.Fatalf("node labels = %v", flow.NodeLabels)
	}
}
