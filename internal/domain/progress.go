package domain

import "fmt"

// Progress is the done/total summary behind the progress bar.
type Progress struct {
	Total int `json:"total"`
	Done  int `json:"done"`
}

// returns done/total in [0,1], 0 for an empty list
func (p Progress) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Done) / float64(p.Total)
}

func (p Progress) Percent() float64 {
	return p.Ratio() * 100
}

func (p Progress) Remaining() int {
	return p.Total - p.Done
}

func (p Progress) String() string {
	return fmt.Sprintf("%d/%d done (%.0f%%)", p.Done, p.Total, p.Percent())
}
