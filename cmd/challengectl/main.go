// Command challengectl is a terminal front end for the ChallengeChain API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/waifuisalie/ChallengeChain/internal/client"
	"github.com/waifuisalie/ChallengeChain/internal/config"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/views"
)

const usage = `Usage: challengectl [-api URL] <command> [flags]

Commands:
  home         list challenges (-category, -status, -fee, -search)
  show         show one challenge (-id)
  mine         challenges a wallet has joined (-wallet)
  leaderboard  rank participants (-challenge, -list)
  history      completed challenges (-wallet, -mine)
  join         connect a wallet and join a challenge (-id)
  create       connect a wallet and create a challenge
  status       set a challenge status (-id, -status)
  score        set a participant score (-participant, -score)
  winner       declare a participant the winner (-participant)
`

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type cli struct {
	cfg *config.Config
	app *client.App
	out io.Writer
	now func() time.Time
}

func run(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	global := flag.NewFlagSet("challengectl", flag.ContinueOnError)
	global.SetOutput(out)
	global.Usage = func() { fmt.Fprint(out, usage) }
	apiURL := global.String("api", cfg.APIBaseURL, "API base URL including the prefix")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return flag.ErrHelp
	}

	wallet := client.NewWalletStore(client.WithConnectDelay(cfg.WalletConnectDelay))
	c := &cli{
		cfg: cfg,
		app: client.NewApp(client.NewAPIClient(*apiURL, cfg.ClientTimeout), wallet),
		out: out,
		now: time.Now,
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "home":
		return c.home(ctx, rest)
	case "show":
		return c.show(ctx, rest)
	case "mine":
		return c.mine(ctx, rest)
	case "leaderboard":
		return c.leaderboard(ctx, rest)
	case "history":
		return c.history(ctx, rest)
	case "join":
		return c.join(ctx, rest)
	case "create":
		return c.create(ctx, rest)
	case "status":
		return c.status(ctx, rest)
	case "score":
		return c.score(ctx, rest)
	case "winner":
		return c.winner(ctx, rest)
	}
	global.Usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

// load fetches the challenge list into the app store.
func (c *cli) load(ctx context.Context) ([]model.ChallengeWithParticipants, error) {
	if err := c.app.Start(ctx); err != nil {
		return nil, err
	}
	return c.app.Challenges.State().Challenges, nil
}

func (c *cli) home(ctx context.Context, args []string) error {
	fs := c.flags("home")
	var f views.Filter
	fs.StringVar(&f.Category, "category", views.All, "category name")
	fs.StringVar(&f.Status, "status", views.All, "upcoming, active or completed")
	fs.StringVar(&f.Fee, "fee", views.All, "low, medium or high")
	fs.StringVar(&f.Search, "search", "", "text in name or description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	challenges, err := c.load(ctx)
	if err != nil {
		return err
	}
	return renderChallenges(c.out, f.Apply(challenges), c.now())
}

func (c *cli) show(ctx context.Context, args []string) error {
	fs := c.flags("show")
	id := fs.Int("id", 0, "challenge id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	challenge, err := c.app.API.GetChallenge(ctx, *id)
	if err != nil {
		return err
	}
	return renderChallenge(c.out, *challenge, c.now())
}

func (c *cli) mine(ctx context.Context, args []string) error {
	fs := c.flags("mine")
	wallet := fs.String("wallet", "", "wallet address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *wallet == "" {
		return errors.New("-wallet is required")
	}

	challenges, err := c.load(ctx)
	if err != nil {
		return err
	}
	return renderChallenges(c.out, views.MyChallenges(challenges, *wallet), c.now())
}

func (c *cli) leaderboard(ctx context.Context, args []string) error {
	fs := c.flags("leaderboard")
	selected := fs.Int("challenge", views.AllChallenges, "active or completed challenge id, 0 for all")
	list := fs.Bool("list", false, "list the challenges that can be selected")
	if err := fs.Parse(args); err != nil {
		return err
	}

	challenges, err := c.load(ctx)
	if err != nil {
		return err
	}
	selectable := views.LeaderboardChallenges(challenges)
	if *list {
		return renderSelectable(c.out, selectable)
	}
	if *selected != views.AllChallenges && !containsChallenge(selectable, *selected) {
		return fmt.Errorf("challenge %d has no leaderboard, see -list", *selected)
	}
	return renderLeaderboard(c.out, views.BuildLeaderboard(challenges, *selected))
}

func (c *cli) history(ctx context.Context, args []string) error {
	fs := c.flags("history")
	wallet := fs.String("wallet", "", "wallet address to highlight wins for")
	onlyMine := fs.Bool("mine", false, "only challenges the wallet joined")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *onlyMine && *wallet == "" {
		return errors.New("-mine needs -wallet")
	}

	challenges, err := c.load(ctx)
	if err != nil {
		return err
	}
	completed := views.Completed(challenges)
	if *onlyMine {
		completed = views.Mine(completed, *wallet)
	}
	return renderHistory(c.out, completed, *wallet)
}

func (c *cli) connect(ctx context.Context) error {
	fmt.Fprintln(c.out, "Connecting wallet...")
	if err := c.app.Wallet.Connect(ctx); err != nil {
		return fmt.Errorf("wallet connect: %w", err)
	}
	w := c.app.Wallet.State()
	fmt.Fprintf(c.out, "Connected %s with %s %s\n", views.ShortAddress(w.Address), w.Balance.StringFixed(2), w.Currency)
	return nil
}

func (c *cli) join(ctx context.Context, args []string) error {
	fs := c.flags("join")
	id := fs.Int("id", 0, "challenge id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	if _, err := c.load(ctx); err != nil {
		return err
	}
	challenge, ok := c.app.Challenges.Find(*id)
	if !ok {
		return fmt.Errorf("challenge %d not found", *id)
	}
	if err := c.connect(ctx); err != nil {
		return err
	}

	n := c.app.JoinChallenge(ctx, challenge)
	renderNotification(c.out, n.Title, n.Description, n.Error)
	if n.Error {
		return errors.New(strings.ToLower(n.Title))
	}
	w := c.app.Wallet.State()
	fmt.Fprintf(c.out, "Balance %s %s\n", w.Balance.StringFixed(2), w.Currency)
	return nil
}

func (c *cli) create(ctx context.Context, args []string) error {
	fs := c.flags("create")
	var form model.ChallengeForm
	fs.StringVar(&form.Name, "name", "", "challenge name")
	fs.StringVar(&form.Description, "description", "", "description")
	fs.StringVar(&form.Rules, "rules", "", "rules")
	fs.StringVar(&form.Category, "category", "", "category")
	fs.StringVar(&form.VerificationMethod, "verification", "honor", "photo, video, app, witness, honor or other")
	fs.IntVar(&form.MaxParticipants, "max", 10, "maximum participants")
	fs.StringVar(&form.CryptoType, "crypto", "SOL", "SOL, DOT or ETH")
	fs.Float64Var(&form.EntryFee, "fee", 0.1, "entry fee")
	start := fs.String("start", "", "start date, YYYY-MM-DD or RFC 3339 (default now)")
	length := fs.Duration("length", 7*24*time.Hour, "challenge length")
	image := fs.String("image", "", "image URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form.StartDate = c.now()
	if *start != "" {
		t, err := parseDate(*start)
		if err != nil {
			return err
		}
		form.StartDate = t
	}
	form.EndDate = form.StartDate.Add(*length)
	if *image != "" {
		form.ImageURL = image
	}

	if err := c.connect(ctx); err != nil {
		return err
	}
	n, err := c.app.CreateChallenge(ctx, form)
	renderNotification(c.out, n.Title, n.Description, n.Error)
	return err
}

func (c *cli) status(ctx context.Context, args []string) error {
	fs := c.flags("status")
	id := fs.Int("id", 0, "challenge id")
	status := fs.String("status", "", "upcoming, active or completed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	challenge, err := c.app.API.UpdateChallengeStatus(ctx, *id, *status)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s is now %s\n", challenge.Name, paint(views.StatusColor(challenge.Status), challenge.Status))
	return nil
}

func (c *cli) score(ctx context.Context, args []string) error {
	fs := c.flags("score")
	id := fs.Int("participant", 0, "participant id")
	value := fs.Float64("score", 0, "score")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := c.app.API.UpdateScore(ctx, *id, *value)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Participant %d score %s\n", p.ID, formatScore(p.Score))
	return nil
}

func (c *cli) winner(ctx context.Context, args []string) error {
	fs := c.flags("winner")
	id := fs.Int("participant", 0, "participant id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := c.app.API.SetWinner(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s won challenge %d\n", views.ShortAddress(p.WalletAddress), p.ChallengeID)
	return nil
}

func containsChallenge(challenges []model.ChallengeWithParticipants, id int) bool {
	for _, ch := range challenges {
		if ch.ID == id {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
