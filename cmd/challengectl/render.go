package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/views"
)

var palette = map[string]*color.Color{
	"green":  color.New(color.FgGreen),
	"yellow": color.New(color.FgYellow),
	"red":    color.New(color.FgRed),
	"blue":   color.New(color.FgBlue),
	"purple": color.New(color.FgMagenta),
	"indigo": color.New(color.FgHiBlue),
	"gray":   color.New(color.FgHiBlack),
}

func paint(name, s string) string {
	if c, ok := palette[name]; ok {
		return c.Sprint(s)
	}
	return s
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatScore(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}

func formatAmount(amount float64, currency string) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + currency
}

func renderChallenges(w io.Writer, challenges []model.ChallengeWithParticipants, now time.Time) error {
	if len(challenges) == 0 {
		_, err := fmt.Fprintln(w, "No challenges found")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tSTATUS\tENTRY\tPOOL\tPLAYERS\tTIME")
	for _, c := range challenges {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d/%d\t%s\n",
			c.ID,
			c.Name,
			paint(views.CategoryStyle(c.Category), c.Category),
			paint(views.StatusColor(c.Status), c.Status),
			formatAmount(c.EntryFee, c.CryptoType),
			formatAmount(c.TotalPool, c.CryptoType),
			len(c.Participants), c.MaxParticipants,
			views.TimeRemaining(c.StartDate, c.EndDate, now),
		)
	}
	return tw.Flush()
}

func renderChallenge(w io.Writer, c model.ChallengeWithParticipants, now time.Time) error {
	bold := color.New(color.Bold)
	bold.Fprintln(w, c.Name)
	fmt.Fprintf(w, "%s  %s  by %s\n",
		paint(views.CategoryStyle(c.Category), c.Category),
		paint(views.StatusColor(c.Status), c.Status),
		c.CreatorName)
	fmt.Fprintf(w, "%s - %s (%s)\n", views.FormatDate(c.StartDate), views.FormatDate(c.EndDate),
		views.TimeRemaining(c.StartDate, c.EndDate, now))
	fmt.Fprintf(w, "Entry fee %s, pool %s, verification %s\n\n",
		formatAmount(c.EntryFee, c.CryptoType), formatAmount(c.TotalPool, c.CryptoType), c.VerificationMethod)
	fmt.Fprintln(w, c.Description)
	fmt.Fprintf(w, "\nRules: %s\n\n", c.Rules)

	if len(c.Participants) == 0 {
		_, err := fmt.Fprintln(w, "No participants yet")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "\tPARTICIPANT\tSCORE\tJOINED\t")
	for i, p := range c.Participants {
		winner := ""
		if p.IsWinner {
			winner = paint("yellow", "winner")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", views.Initials(i), views.ShortAddress(p.WalletAddress),
			formatScore(p.Score), views.FormatDate(p.JoinedAt), winner)
	}
	return tw.Flush()
}

func renderLeaderboard(w io.Writer, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No participants to rank")
		return err
	}

	badgeColor := map[string]string{
		model.BadgeGold:   "yellow",
		model.BadgeSilver: "gray",
		model.BadgeBronze: "red",
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "RANK\tPARTICIPANT\tCHALLENGE\tSCORE\tREWARD")
	for _, e := range entries {
		rank := strconv.Itoa(e.Rank)
		if e.Badge != "" {
			rank = paint(badgeColor[e.Badge], rank)
		}
		reward := "-"
		if e.Reward != nil {
			reward = formatAmount(*e.Reward, e.CryptoType)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", rank, views.ShortAddress(e.WalletAddress),
			e.ChallengeName, formatScore(e.Score), reward)
	}
	return tw.Flush()
}

func renderSelectable(w io.Writer, challenges []model.ChallengeWithParticipants) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "%d\t%s\t\n", 0, "All Challenges")
	for _, c := range challenges {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Name, paint(views.StatusColor(c.Status), c.Status))
	}
	return tw.Flush()
}

func renderHistory(w io.Writer, challenges []model.ChallengeWithParticipants, wallet string) error {
	if len(challenges) == 0 {
		_, err := fmt.Fprintln(w, "No completed challenges")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tENDED\tPOOL\tWINNER\t")
	for _, c := range challenges {
		mark := ""
		if wallet != "" && views.DidUserWin(c, wallet) {
			mark = paint("green", "you won")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, views.FormatDate(c.EndDate),
			formatAmount(c.TotalPool, c.CryptoType), views.WinnerDisplay(c), mark)
	}
	return tw.Flush()
}

func renderNotification(w io.Writer, title, description string, failed bool) {
	c := color.New(color.FgGreen, color.Bold)
	if failed {
		c = color.New(color.FgRed, color.Bold)
	}
	c.Fprint(w, title)
	fmt.Fprintf(w, ": %s\n", description)
}
