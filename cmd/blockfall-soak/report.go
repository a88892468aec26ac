package main

import (
	"io"
	"sort"
	"text/template"
	"time"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	Step      time.Duration
	Seed      uint64
	InputRate float64

	// Results
	Steps      int64
	Renders    int64
	Refreshes  int64
	WallTime   time.Duration
	Inputs     map[string]int64
	Engine     tetris.Stats
	Scheduler  *clock.SchedulerStats
	FinalState tetris.State
	Violation  string
}

// InputNames returns the recorded input actions in name order.
func (r *Report) InputNames() []string {
	names := make([]string, 0, len(r.Inputs))
	for name := range r.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Simulated Duration:** {{.Duration}}
- **Step:** {{.Step}}
- **Seed:** {{.Seed}}
- **Input Rate:** {{printf "%.2f" .InputRate}}

## Run
- **Steps:** {{.Steps}}
- **Frames Rendered:** {{.Renders}}
- **Timer Refreshes:** {{.Refreshes}}
- **Wall Time:** {{.WallTime}}
- **Final State:** {{.FinalState}}
{{- if .Violation}}
- **VIOLATION:** {{.Violation}}
{{- else}}
- **Violations:** none
{{- end}}

## Inputs
{{- range .InputNames}}
- {{.}}: {{index $.Inputs .}}
{{- end}}

## Engine
- Spawns:        {{.Engine.Spawns}}
- Locks:         {{.Engine.Locks}}
- Lines Cleared: {{.Engine.LinesCleared}}
- Resets:        {{.Engine.Resets}}
- Restarts:      {{.Engine.Restarts}}
{{- range $n, $count := .Engine.ClearsBySize}}{{if $n}}
- {{$n}}-row clears: {{$count}}{{end}}{{end}}

## Scheduler
- Sources: {{.Scheduler.SourceCount}} ({{.Scheduler.ActiveCount}} active at end)
- Executions: {{.Scheduler.TotalExecutions}}
{{- range .Scheduler.Sources}}
- {{.Name}}: runs={{.ExecutionCount}} starts={{.Starts}} cancels={{.Cancels}} gen={{.Generation}} avg={{.AvgDuration}} max={{.MaxDuration}}
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
