// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package period

import (
	"github.com/bitmark-inc/daonode/fault"
)

// Service - maps block heights onto the repeating voting cycle
//
// the first cycle starts at the genesis height; all lookups are pure
// functions of the height
type Service struct {
	genesis   uint64
	durations Durations
	cycle     uint64
}

// NewService - create a phase oracle
func NewService(genesisHeight uint64, durations Durations) (*Service, error) {
	if err := durations.Validate(); nil != err {
		return nil, err
	}
	return &Service{
		genesis:   genesisHeight,
		durations: durations,
		cycle:     durations.CycleLength(),
	}, nil
}

// GenesisHeight - height of the first block of the first cycle
func (s *Service) GenesisHeight() uint64 {
	return s.genesis
}

// CycleIndex - zero based cycle number containing height
func (s *Service) CycleIndex(height uint64) (uint64, error) {
	if height < s.genesis {
		return 0, fault.ErrInvalidHeight
	}
	return (height - s.genesis) / s.cycle, nil
}

// PhaseForHeight - phase that contains height, Undefined before genesis
func (s *Service) PhaseForHeight(height uint64) Phase {
	if height < s.genesis {
		return Undefined
	}
	offset := (height - s.genesis) % s.cycle
	for _, p := range Phases {
		d := s.durations.Of(p)
		if offset < d {
			return p
		}
		offset -= d
	}
	return Undefined // not reachable while durations are valid
}

// IsInPhase - true if height lies within phase of its cycle
//
// both the first and the last block of a phase are inside it
func (s *Service) IsInPhase(height uint64, phase Phase) bool {
	return Undefined != phase && s.PhaseForHeight(height) == phase
}

// FirstBlockOfPhase - first height of phase in the cycle containing height
func (s *Service) FirstBlockOfPhase(height uint64, phase Phase) (uint64, error) {
	cycleStart, err := s.cycleStart(height)
	if nil != err {
		return 0, err
	}
	offset := uint64(0)
	for _, p := range Phases {
		if p == phase {
			return cycleStart + offset, nil
		}
		offset += s.durations.Of(p)
	}
	return 0, fault.ErrUnknownPhase
}

// LastBlockOfPhase - last height of phase in the cycle containing height
func (s *Service) LastBlockOfPhase(height uint64, phase Phase) (uint64, error) {
	first, err := s.FirstBlockOfPhase(height, phase)
	if nil != err {
		return 0, err
	}
	return first + s.durations.Of(phase) - 1, nil
}

func (s *Service) cycleStart(height uint64) (uint64, error) {
	index, err := s.CycleIndex(height)
	if nil != err {
		return 0, err
	}
	return s.genesis + index*s.cycle, nil
}
