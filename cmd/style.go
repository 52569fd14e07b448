package main

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/showdown/domain/poker"
	"github.com/pterm/pterm"
)

func plainLine(v verdict) string {
	line := fmt.Sprintf("%s vs %s: %s", v.Left.Category, v.Right.Category, v.Outcome)
	if v.reference != nil {
		line += fmt.Sprintf(" (reference: %s)", v.reference.outcome)
	}
	return line
}

func renderPanel(v verdict) (string, error) {
	left := pterm.Panel{Data: handBox("LEFT", v.deal.left, v.Left, status(v.Outcome, poker.LeftWins))}
	right := pterm.Panel{Data: handBox("RIGHT", v.deal.right, v.Right, status(v.Outcome, poker.RightWins))}
	panels := [][]pterm.Panel{{left, right}}
	if v.reference != nil {
		panels = append(panels, []pterm.Panel{{Data: referenceBox(*v.reference)}})
	}
	return pterm.DefaultPanel.WithPanels(panels).Srender()
}

func status(outcome, win poker.Outcome) string {
	switch outcome {
	case win:
		return pterm.LightGreen("Winner")
	case poker.Draw:
		return pterm.LightYellow("Draw")
	default:
		return pterm.LightRed("Lost")
	}
}

func handBox(title string, h poker.Hand, res poker.Result, state string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|"+title+"|")).WithTitleTopCenter().Sprintf(
		"%s\n%s (strength %d)\nTie-break: %s\n%s",
		prettyCards(h[:]), pterm.LightCyan(res.Category.String()), res.Strength, prettyCards(res.Order[:]), state)
}

func referenceBox(r referenceVerdict) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightMagenta("|REFERENCE|")).WithTitleTopCenter().Sprintf(
		"Left: %s\nRight: %s\n%s", r.left, r.right, r.outcome)
}

func prettyCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " - ")
}

func outcomeHeader(v verdict) string {
	s := v.Outcome.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
