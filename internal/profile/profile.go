// seehuhn.de/go/color - convert colors between color spaces
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile writes pprof profiles for the command line tools.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is a running profiling session.
type Session struct {
	cpuFile *os.File
	memPath string
}

// Start begins CPU profiling if cpuPath is non-empty.  If memPath is
// non-empty, an allocation profile is written there when the session is
// stopped.  Both arguments may be empty, in which case Stop does nothing.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}

	fd, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("profile: %w", err)
	}
	s.cpuFile = fd
	return s, nil
}

// Stop ends CPU profiling and writes the allocation profile.
// It is safe to call Stop more than once.
func (s *Session) Stop() error {
	var errs []error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpuFile.Close())
		s.cpuFile = nil
	}
	if s.memPath != "" {
		errs = append(errs, writeAllocs(s.memPath))
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeAllocs(path string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return errors.New("profile: no allocation profile available")
	}
	fd, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	runtime.GC()
	err = allocs.WriteTo(fd, 0)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}
