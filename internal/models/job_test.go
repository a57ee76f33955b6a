package models

import "testing"

func TestJob_FirstFailedStep(t *testing.T) {
	tests := []struct {
		name     string
		steps    []Step
		wantName string
		wantOK   bool
	}{
		{
			name:   "no steps",
			steps:  nil,
			wantOK: false,
		},
		{
			name: "all steps succeeded",
			steps: []Step{
				{Name: "Checkout", Conclusion: "success"},
				{Name: "Build", Conclusion: "success"},
			},
			wantOK: false,
		},
		{
			name: "single failure",
			steps: []Step{
				{Name: "Checkout", Conclusion: "success"},
				{Name: "Build", Conclusion: "failure"},
				{Name: "Post", Conclusion: "skipped"},
			},
			wantName: "Build",
			wantOK:   true,
		},
		{
			name: "first failure wins",
			steps: []Step{
				{Name: "Lint", Conclusion: "failure"},
				{Name: "Test", Conclusion: "failure"},
			},
			wantName: "Lint",
			wantOK:   true,
		},
		{
			name: "cancelled is not a failure",
			steps: []Step{
				{Name: "Deploy", Conclusion: "cancelled"},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, ok := Job{Steps: tt.steps}.FirstFailedStep()
			if ok != tt.wantOK {
				t.Fatalf("FirstFailedStep() ok = %v, want %v", ok, tt.wantOK)
			}
			if step.Name != tt.wantName {
				t.Errorf("FirstFailedStep() name = %q, want %q", step.Name, tt.wantName)
			}
		})
	}
}
