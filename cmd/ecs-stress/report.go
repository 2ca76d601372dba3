package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Entities   int
	Worlds     int
	Components int
	Systems    int

	// Results
	TotalSweeps   int64
	TotalFaults   int64
	TotalTime     time.Duration
	FrameSweep    Stats
	FixedSweep    Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Entities per World:** {{.Entities}}
- **Worlds:** {{.Worlds}}
- **Generated Components:** {{.Components}}
- **Generated Systems:** {{.Systems}}

## Performance Results
- **Total Sweeps:** {{.TotalSweeps}}
- **Captured Faults:** {{.TotalFaults}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Sweep Time:**
  - **Avg:** {{.FrameSweep.Avg}}
  - **Min:** {{.FrameSweep.Min}}
  - **Max:** {{.FrameSweep.Max}}
- **Fixed-Interval Sweep Time:**
  - **Avg:** {{.FixedSweep.Avg}}
  - **Min:** {{.FixedSweep.Min}}
  - **Max:** {{.FixedSweep.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"bsub": func(a, b uint64) int64 { return int64(a) - int64(b) },
		"usub": func(a, b uint32) uint32 { return a - b },
	}).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
