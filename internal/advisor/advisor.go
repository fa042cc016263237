// Package advisor generates AI summaries of the LLC's financial health
// and answers bookkeeping questions, backed by the Gemini API.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/brickbooks-dev/brickbooks/internal/ledger"
	"github.com/brickbooks-dev/brickbooks/internal/model"
)

const maxAttempts = 3

// FallbackMessage is returned when every generation attempt fails.
const FallbackMessage = "Sorry, I was unable to process your request at this time. Please try again later."

// FinancialSnapshot is the data handed to the summary prompt.
type FinancialSnapshot struct {
	Assets struct {
		PropertyValue decimal.Decimal `json:"propertyValue"`
		Checking      decimal.Decimal `json:"checking"`
		Savings       decimal.Decimal `json:"savings"`
	} `json:"assets"`
	Liabilities struct {
		MortgageLoan decimal.Decimal `json:"mortgageLoan"`
		HelocLoan    decimal.Decimal `json:"helocLoan"`
		MemberLoan   decimal.Decimal `json:"memberLoan"`
	} `json:"liabilities"`
	RecentTransactions []model.Transaction `json:"recentTransactions"`
}

// Snapshot extracts the summary inputs from the ledger store: the key
// balances plus the checking account's last five transactions.
func Snapshot(store *ledger.Store) FinancialSnapshot {
	var snap FinancialSnapshot
	if a, ok := store.Get(ledger.SlugPropertyAsset); ok {
		snap.Assets.PropertyValue = a.Balance
	}
	if a, ok := store.Get(ledger.SlugLLCBank); ok {
		snap.Assets.Checking = a.Balance
		if n := len(a.Transactions); n > 0 {
			start := n - 5
			if start < 0 {
				start = 0
			}
			snap.RecentTransactions = append([]model.Transaction(nil), a.Transactions[start:]...)
		}
	}
	if a, ok := store.Get(ledger.SlugLLCSavings); ok {
		snap.Assets.Savings = a.Balance
	}
	if a, ok := store.Get(ledger.SlugMortgageLoan); ok {
		snap.Liabilities.MortgageLoan = a.Balance
	}
	if a, ok := store.Get(ledger.SlugHelocLoan); ok {
		snap.Liabilities.HelocLoan = a.Balance
	}
	if a, ok := store.Get(ledger.SlugMemberLoan); ok {
		snap.Liabilities.MemberLoan = a.Balance
	}
	return snap
}

type generateFunc func(ctx context.Context, modelName, prompt string) (string, error)

// Advisor asks the model for markdown answers, retrying transient
// failures with exponential backoff.
type Advisor struct {
	gen       generateFunc
	modelName string
	journal   *Journal
	sleep     func(time.Duration)
}

// New creates an Advisor over a Gemini client. journal may be nil to
// skip exchange logging.
func New(client *genai.Client, modelName string, journal *Journal) *Advisor {
	gen := func(ctx context.Context, modelName, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, modelName, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return "", fmt.Errorf("empty response from model %s", modelName)
		}
		return resp.Candidates[0].Content.Parts[0].Text, nil
	}
	return &Advisor{gen: gen, modelName: modelName, journal: journal, sleep: time.Sleep}
}

// Summarize produces a markdown summary of the LLC's financial health.
func (a *Advisor) Summarize(ctx context.Context, snap FinancialSnapshot) string {
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("marshaling snapshot: %v", err)
		return FallbackMessage
	}
	prompt := fmt.Sprintf(`You are a financial analyst for a small real estate LLC. Based on the following JSON data, provide a concise, easy-to-read summary of the LLC's current financial health in markdown format. Highlight key metrics like liquidity (cash on hand), total debt, and net asset value (Assets - Liabilities). Analyze the recent transactions for cash flow insights.

Data: %s`, data)
	return a.generate(ctx, "summary", prompt)
}

// Ask answers a free-form bookkeeping question.
func (a *Advisor) Ask(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(`You are an expert real estate accountant providing advice to a small LLC owner. Answer the following question clearly and concisely in markdown format.

Question: %q`, question)
	return a.generate(ctx, "question", prompt)
}

// generate retries up to maxAttempts with 1s, 2s, 4s backoff and falls
// back to an apology rather than surfacing an error; a summary outage
// must never break the dashboard.
func (a *Advisor) generate(ctx context.Context, kind, prompt string) string {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := a.gen(ctx, a.modelName, prompt)
		if err == nil {
			a.record(kind, prompt, text)
			return text
		}
		if attempt == maxAttempts-1 {
			log.Printf("advisor %s failed after %d attempts: %v", kind, maxAttempts, err)
			break
		}
		a.sleep(time.Duration(1<<attempt) * time.Second)
	}
	a.record(kind, prompt, FallbackMessage)
	return FallbackMessage
}

func (a *Advisor) record(kind, prompt, response string) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Append(Exchange{
		Timestamp: time.Now(),
		Kind:      kind,
		Prompt:    prompt,
		Response:  response,
	}); err != nil {
		log.Printf("writing advisor journal: %v", err)
	}
}
