package service

import (
	"fmt"
	"strconv"
	"time"

	"seasonal_calc/internal/models"
)

// Texts shown next to a thaw plan and a running countdown.
const (
	coldWaterHint = "Cold-water thawing: about 30 minutes per pound. Keep the turkey in a leak-proof bag and change the water every 30 minutes."
	fridgeHint    = "Fridge thawing: about 24 hours for every 4-5 lb, keeping the turkey at or below 40°F (4°C)."

	coldWaterSafety = "Cold-water thawing should be done in a leak-proof plastic bag, fully submerged, with the water changed every 30 minutes. Cook the turkey immediately after thawing, and always roast to an internal temperature of 165°F (74°C)."
	fridgeSafety    = "Fridge thawing keeps the turkey at a safe temperature (at or below 40°F / 4°C). Once thawed, the turkey can stay in the fridge for 1-2 days before cooking. Always roast to an internal temperature of 165°F (74°C) in the thickest parts of the breast, thigh, and where the thigh meets the body."

	startASAP         = "Start as soon as possible."
	noTargetNote      = "Without a specific serving time, this is only a rough thawing duration. Always allow extra time when you can."
	fridgeLateWarning = "Based on typical fridge thawing guidelines, there isn't enough time to fully thaw this turkey in the refrigerator before your target serving time. Consider adjusting your serving time, using the cold-water method for part of the thaw, or choosing a smaller turkey."
	otherLateWarning  = "There may not be enough time to fully thaw this turkey by your target serving time using this method. Start as soon as possible and adjust your plan if needed."

	countdownNotStartedMsg = "Thawing hasn't started yet based on this schedule."
	countdownInWindowMsg   = "Your turkey should currently be in the thawing window."
	countdownRemainingMsg  = "Approximate time remaining until thawed: %s"
	countdownCompletedMsg  = "Your turkey should be fully thawed according to the schedule. Always double-check internal temperature before cooking."
	countdownPassedMsg     = "Your planned thaw time has already passed. Double-check if the turkey is fully thawed before cooking."

	genericSavingsText = "Switching to LED lights could cut your lighting cost by around 80%."
)

func MethodHint(m models.ThawMethod) string {
	if m == models.MethodColdWater {
		return coldWaterHint
	}
	return fridgeHint
}

func SafetyNote(m models.ThawMethod) string {
	if m == models.MethodColdWater {
		return coldWaterSafety
	}
	return fridgeSafety
}

// startTimeLayout renders the thaw start in the plan's location.
const startTimeLayout = "Mon, Jan 2, 3:04 PM"

// StartText is the formatted thaw start, or an early-start prompt without one.
func StartText(start *time.Time) string {
	if start == nil {
		return startASAP
	}
	return start.Format(startTimeLayout)
}

// ScheduleNote explains the buffer, or asks for an early start without a target.
func ScheduleNote(hasTarget bool) string {
	if !hasTarget {
		return noTargetNote
	}
	return fmt.Sprintf("This allows about %s hours after thawing for prep and cooking before your target serving time.",
		strconv.FormatFloat(BufferHours, 'f', -1, 64))
}

// LateWarning is empty unless the plan is behind schedule.
func LateWarning(m models.ThawMethod, behind bool) string {
	if !behind {
		return ""
	}
	if m == models.MethodFridge {
		return fridgeLateWarning
	}
	return otherLateWarning
}

// countdownMessage is the ticking text for a countdown state.
func countdownMessage(phase models.CountdownPhase, remainingText string) string {
	switch phase {
	case models.PhaseNotStarted:
		return countdownNotStartedMsg
	case models.PhaseInProgress:
		return fmt.Sprintf(countdownRemainingMsg, remainingText)
	case models.PhaseCompleted:
		return countdownCompletedMsg
	default:
		return ""
	}
}

// planCountdownMessage is what the page shows right after planning.
func planCountdownMessage(phase models.CountdownPhase) string {
	switch phase {
	case models.PhaseNotStarted:
		return countdownNotStartedMsg
	case models.PhaseInProgress:
		return countdownInWindowMsg
	case models.PhaseCompleted:
		return countdownPassedMsg
	default:
		return ""
	}
}

// SavingsText describes the LED switch. LED estimates have none; an
// incandescent result without figures gets the generic sentence.
func SavingsText(lt models.LightType, res models.LightCostResult, symbol string) string {
	if lt != models.LightIncandescent {
		return ""
	}
	if res.LEDCostEstimate == nil || res.Savings == nil || *res.Savings <= 0 {
		return genericSavingsText
	}
	return fmt.Sprintf("If you switched these lights to LED, you could cut your lighting cost by about 80%%, saving around %s this season (your LED cost would be about %s).",
		FormatMoney(symbol, *res.Savings), FormatMoney(symbol, *res.LEDCostEstimate))
}

// LightSummary is the shareable one-line description of an estimate.
func LightSummary(p models.LightParams, res models.LightCostResult, symbol string) string {
	return fmt.Sprintf("My %s Christmas lights (%s W) running %s hours per day for %d days at %s%s/kWh will cost about %s for the season.",
		p.LightType,
		strconv.FormatFloat(p.PowerWatt, 'f', -1, 64),
		strconv.FormatFloat(p.HoursPerDay, 'f', -1, 64),
		p.Days,
		symbol,
		strconv.FormatFloat(p.RatePerKWh, 'f', -1, 64),
		FormatMoney(symbol, res.TotalCost),
	)
}
