package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/waifuisalie/ChallengeChain/internal/logger"
	model "github.com/waifuisalie/ChallengeChain/internal/models"
	"github.com/waifuisalie/ChallengeChain/internal/validation"
)

// DemoUserID is the account every client action is attributed to until
// real sign-in exists.
const DemoUserID = 1

// Notification is the toast shown after a user action.
type Notification struct {
	Title       string
	Description string
	Error       bool
}

// App wires the API client to the wallet and challenge stores and runs the
// join and create flows.
type App struct {
	API        *APIClient
	Wallet     *WalletStore
	Challenges *ChallengeStore
	UserID     int

	validate *validation.Validator
	now      func() time.Time
}

func NewApp(api *APIClient, wallet *WalletStore) *App {
	return &App{
		API:        api,
		Wallet:     wallet,
		Challenges: NewChallengeStore(api),
		UserID:     DemoUserID,
		validate:   validation.New(),
		now:        time.Now,
	}
}

// Start performs the initial challenge fetch.
func (a *App) Start(ctx context.Context) error {
	return a.Challenges.Start(ctx)
}

// JoinChallenge enrolls the connected wallet in c. The wallet is debited
// only after the server accepted the enrollment.
func (a *App) JoinChallenge(ctx context.Context, c model.ChallengeWithParticipants) Notification {
	wallet := a.Wallet.State()
	if !wallet.Connected {
		return Notification{Title: "Wallet Not Connected", Description: "Please connect your wallet first!", Error: true}
	}

	fee := decimal.NewFromFloat(c.EntryFee)
	if err := a.Wallet.CanAfford(fee); err != nil {
		return Notification{
			Title:       "Insufficient Balance",
			Description: fmt.Sprintf("You need at least %s %s to join this challenge.", fee.String(), c.CryptoType),
			Error:       true,
		}
	}

	score := 0.0
	_, err := a.API.JoinChallenge(ctx, c.ID, model.InsertParticipant{
		ChallengeID:   c.ID,
		UserID:        a.UserID,
		WalletAddress: wallet.Address,
		Score:         &score,
	})
	if err != nil {
		logger.Warning("Join challenge %d failed: %v", c.ID, err)
		return Notification{Title: "Failed to Join", Description: "There was an error joining the challenge.", Error: true}
	}

	if err := a.Wallet.Debit(fee); err != nil {
		// The wallet changed between the check and the debit.
		logger.Warning("Debit after joining challenge %d failed: %v", c.ID, err)
	}
	a.refresh(ctx)

	return Notification{Title: "Challenge Joined", Description: "You have successfully joined the challenge!"}
}

// CreateChallenge validates form and submits it on behalf of the app user.
// A form error is returned as a *validation.Error with no request sent.
func (a *App) CreateChallenge(ctx context.Context, form model.ChallengeForm) (Notification, error) {
	if !a.Wallet.State().Connected {
		return Notification{Title: "Wallet Not Connected", Description: "Please connect your wallet first!", Error: true}, ErrWalletNotConnected
	}

	if err := a.validate.Struct(form); err != nil {
		return Notification{Title: "Invalid Challenge", Description: err.Error(), Error: true}, err
	}

	in := model.InsertChallenge{
		CreatorID:          a.UserID,
		Name:               form.Name,
		Description:        form.Description,
		Rules:              form.Rules,
		Category:           form.Category,
		VerificationMethod: form.VerificationMethod,
		StartDate:          form.StartDate,
		EndDate:            form.EndDate,
		MaxParticipants:    form.MaxParticipants,
		CryptoType:         form.CryptoType,
		EntryFee:           form.EntryFee,
		Status:             model.StatusFor(form.StartDate, a.now()),
		ImageURL:           form.ImageURL,
	}

	if _, err := a.API.CreateChallenge(ctx, in); err != nil {
		logger.Warning("Create challenge failed: %v", err)
		return Notification{Title: "Challenge Creation Failed", Description: "There was an error creating your challenge.", Error: true}, err
	}
	a.refresh(ctx)

	return Notification{Title: "Challenge Created", Description: "Your challenge has been created successfully!"}, nil
}

func (a *App) refresh(ctx context.Context) {
	if err := a.Challenges.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warning("Refreshing challenges failed: %v", err)
	}
}
