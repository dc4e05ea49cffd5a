/* YaPFCP - Yet another PFCP codec
 *
 * Copyright (C) 2020-2024 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/yapfcp/yapfcp/core"
)

// Profiler writes CPU and heap profiles of a decoding run.
type Profiler struct {
	CPUProfile string
	MemProfile string

	cpuFile *os.File
}

func (p *Profiler) String() string {
	return "Profiler"
}

// Start begins CPU profiling when a CPU profile path is set.
func (p *Profiler) Start() error {
	if p.CPUProfile == "" {
		return nil
	}
	f, err := os.Create(p.CPUProfile)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	p.cpuFile = f
	core.LogInfo(p, "Profiling CPU - outputting to ", p.CPUProfile)
	return nil
}

// Stop ends CPU profiling and writes the heap profile.
func (p *Profiler) Stop() error {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}
	if p.MemProfile == "" {
		return nil
	}

	f, err := os.Create(p.MemProfile)
	if err != nil {
		return err
	}
	defer f.Close()
	core.LogInfo(p, "Profiling memory - outputting to ", p.MemProfile)
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
