package tui

import (
	"fmt"

	"github.com/akyairhashvil/tdelta/internal/config"
	"github.com/akyairhashvil/tdelta/internal/countdown"
	"github.com/akyairhashvil/tdelta/internal/models"
)

// Banner text shared by the TUI and the plain output.
const (
	TitleText            = "Time Delta Calculator"
	SubtitleText         = "Select a future date and time to start the countdown."
	FinishedTitle        = "Countdown Finished!"
	FinishedDetail       = "The selected time has been reached."
	AwaitingTitle        = "Please select a date"
	AwaitingDetail       = "Choose a target date and time to begin."
	InvalidTargetMessage = "Unrecognized date. Use YYYY-MM-DDTHH:MM."
)

// PadUnit zero-pads a unit value to two digits. Wider values are kept whole.
func PadUnit(v int) string {
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("%02d", v)
}

// FormatRemaining renders all four units on one line, e.g. "01d 01h 02m 03s".
func FormatRemaining(r models.RemainingTime) string {
	return fmt.Sprintf("%sd %sh %sm %ss", PadUnit(r.Days), PadUnit(r.Hours), PadUnit(r.Minutes), PadUnit(r.Seconds))
}

// FormatSnapshotLine is the single-line rendition of a tick.
func FormatSnapshotLine(s countdown.Snapshot) string {
	switch countdown.ResolveMode(s.Target, s.Remaining) {
	case models.ModeAwaitingInput:
		return AwaitingTitle
	case models.ModeFinished:
		return FinishedTitle + " " + FinishedDetail
	case models.ModeCounting:
		return FormatRemaining(*s.Remaining)
	default:
		return InvalidTargetMessage
	}
}

func unitLabels() [4]string {
	return [4]string{"Days", "Hours", "Minutes", "Seconds"}
}

func unitValues(r models.RemainingTime) [4]int {
	return [4]int{r.Days, r.Hours, r.Minutes, r.Seconds}
}

func targetPlaceholder() string {
	return config.TargetLayout
}
