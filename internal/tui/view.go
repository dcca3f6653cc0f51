package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asanchezgar/rehaplan/internal/display"
	"github.com/asanchezgar/rehaplan/internal/schedule"
	"github.com/asanchezgar/rehaplan/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.patient.Name
	if title == "" {
		title = "Horario semanal"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		clockStyle.Render(fmt.Sprintf("%s  %s", m.day(), utils.FormatMinutes(utils.MinuteOfDay(m.now)))),
		m.viewNowPanel(),
		"",
		m.viewDaySchedule(),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewNowPanel() string {
	dayCtx := m.dayContext()

	if dayCtx.Current == nil && dayCtx.Next == nil {
		if dayCtx.Total == 0 {
			return currentStyle.Render(restStyle.Render("Día de descanso"))
		}
		return currentStyle.Render("Sin actividad ahora")
	}

	var lines []string
	if dayCtx.Current != nil {
		imgs := display.ResolveImages(dayCtx.Current.Name, dayCtx.Current.Room)
		lines = append(lines,
			fmt.Sprintf("Ahora: %s", dayCtx.Current.FullDescription),
			clockStyle.Render(fmt.Sprintf("%s  ·  %s", dayCtx.Current.Time, imgs.Activity)),
		)
	} else {
		lines = append(lines, restStyle.Render("Sin actividad ahora"))
	}
	panel := currentStyle.Render(strings.Join(lines, "\n"))

	if dayCtx.Next != nil {
		panel = lipgloss.JoinVertical(lipgloss.Center,
			panel,
			nextStyle.Render(fmt.Sprintf("Después, a las %s: %s", dayCtx.Next.Time, dayCtx.Next.FullDescription)),
		)
	}
	return panel
}

func (m Model) viewDaySchedule() string {
	activities := schedule.DayActivities(m.patient.Week, m.day())
	if len(activities) == 0 {
		return restStyle.Render("No hay actividades programadas.")
	}

	nowMin := utils.MinuteOfDay(m.now)
	lines := []string{dayHeaderStyle.Render(m.day())}
	for _, act := range activities {
		line := fmt.Sprintf("%s  %s", act.Time, act.FullDescription)
		if act.Minutes < nowMin && m.dayIdx == todayIndex(m.now) {
			lines = append(lines, pastActivityStyle.Render(line))
		} else {
			lines = append(lines, activityStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
