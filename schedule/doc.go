// SPDX-License-Identifier: MIT
// Package schedule provides cooling schedules for the annealing engine.
//
// A schedule is a finite sequence of Steps temperatures. IsHot reports whether
// ticks remain; every Temperature call returns the current tick's value and
// advances. After the last tick Temperature keeps returning the final value.
//
//	Exponential  Start·(End/Start)^(i/(Steps-1))   geometric cooling, Start,End > 0
//	Linear       Start + (End-Start)·i/(Steps-1)   straight line, Start,End >= 0
//	Constant     T                                 fixed temperature, T >= 0
//
// A one-step schedule yields Start (T for Constant). Schedules are stateful and
// not safe for concurrent use; build one per engine, or Reset between runs.
package schedule
