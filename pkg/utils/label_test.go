package utils

import "testing"

func TestMergeLabel(t *testing.T) {
	tests := []struct {
		name     string
		existing Label
		incoming Label
		want     Label
	}{
		{
			name:     "empty existing yields incoming",
			existing: Label{},
			incoming: Label{Value: "forest", Source: "infer"},
			want:     Label{Value: "forest", Source: "infer"},
		},
		{
			name:     "empty incoming yields existing",
			existing: Label{Value: "forest", Source: "infer"},
			incoming: Label{},
			want:     Label{Value: "forest", Source: "infer"},
		},
		{
			name:     "values accumulate",
			existing: Label{Value: "a", Source: "encode"},
			incoming: Label{Value: "b", Source: "infer"},
			want:     Label{Value: "a|b", Source: "encode,infer"},
		},
		{
			name:     "missing source on one side",
			existing: Label{Value: "a"},
			incoming: Label{Value: "b", Source: "infer"},
			want:     Label{Value: "a|b", Source: "infer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeLabel(tt.existing, tt.incoming); got != tt.want {
				t.Errorf("MergeLabel() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
