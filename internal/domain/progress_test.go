package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		progress    Progress
		wantRatio   float64
		wantPercent float64
		wantString  string
	}{
		{name: "empty list", progress: Progress{}, wantRatio: 0, wantPercent: 0, wantString: "0/0 done (0%)"},
		{name: "half done", progress: Progress{Total: 4, Done: 2}, wantRatio: 0.5, wantPercent: 50, wantString: "2/4 done (50%)"},
		{name: "all done", progress: Progress{Total: 3, Done: 3}, wantRatio: 1, wantPercent: 100, wantString: "3/3 done (100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantRatio, tt.progress.Ratio(), 1e-9)
			assert.InDelta(t, tt.wantPercent, tt.progress.Percent(), 1e-9)
			assert.Equal(t, tt.wantString, tt.progress.String())
		})
	}

	assert.Equal(t, 1, Progress{Total: 3, Done: 2}.Remaining())
}
