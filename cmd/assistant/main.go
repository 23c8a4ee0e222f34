// Command assistant is the interactive terminal front-end: it prompts for
// the attributes of one transaction, scores it, prints the verdict with
// its key factors, and loops until the user quits.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/hamida-paiman/fraudscore/internal/config"
	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/feature"
	"github.com/hamida-paiman/fraudscore/internal/input"
	"github.com/hamida-paiman/fraudscore/internal/model"
	"github.com/hamida-paiman/fraudscore/internal/scoring"
	"github.com/hamida-paiman/fraudscore/internal/telemetry"
)

func main() {
	cfg := config.Load()

	// The assistant logs quietly; the terminal is for conversation.
	if err := telemetry.InitLogger(cfg.Env, "error"); err != nil {
		panic(err)
	}
	defer telemetry.Sync()
	logger := telemetry.Logger

	db, err := model.InitDB(cfg.ModelDBPath)
	if err != nil {
		logger.Fatal("failed to open model db", zap.String("path", cfg.ModelDBPath), zap.Error(err))
	}
	defer db.Close()

	classifier, err := model.NewStore(db).Load()
	if err != nil {
		logger.Fatal("failed to load model artifact (run `go run ./testdata/generate` to create one)",
			zap.String("path", cfg.ModelDBPath), zap.Error(err))
	}

	svc := scoring.NewService(classifier, feature.DefaultSchemaConfig(), logger)

	in := bufio.NewReader(os.Stdin)

	fmt.Println("Fraud Detection Assistant")
	fmt.Println("-------------------------")
	fmt.Printf("Model test accuracy (overall): %.2f\n", classifier.TestAccuracy)
	fmt.Println("I will ask you for transaction details and estimate fraud risk.")

	for {
		raw, ok := promptTransaction(in)
		if !ok {
			fmt.Println("\nGoodbye!")
			return
		}

		result, err := svc.Evaluate(raw)
		if err != nil {
			fmt.Printf("\nSomething went wrong: %v\n", err)
			if !askYesNo(in, "Try again? (y/n): ") {
				return
			}
			continue
		}

		fmt.Println("\n=== Prediction ===")
		fmt.Println(result.Message)

		if !askYesNo(in, "\nDo you want to check another transaction? (y/n): ") {
			fmt.Println("Goodbye!")
			return
		}
	}
}

// promptTransaction collects and parses the attributes of one transaction.
// A parse failure names the bad field and restarts the questionnaire.
// Returns ok=false on EOF (Ctrl-D).
func promptTransaction(in *bufio.Reader) (domain.RawTransaction, bool) {
	for {
		fmt.Println("\nPlease enter transaction details.")

		fields := input.Fields{}
		prompts := []struct {
			label string
			dst   *string
		}{
			{"Transaction amount: ", &fields.Amount},
			{"Quantity: ", &fields.Quantity},
			{"Customer age: ", &fields.CustomerAge},
			{"Account age in days: ", &fields.AccountAgeDays},
			{"Transaction date (YYYY-MM-DD): ", &fields.TransactionDate},
			{"Transaction hour (0-23): ", &fields.TransactionHour},
			{"Payment method (e.g., Credit Card, PayPal): ", &fields.PaymentMethod},
			{"Product category (e.g., Electronics): ", &fields.ProductCategory},
			{"Device used (e.g., Mobile, Desktop): ", &fields.DeviceUsed},
			{"Customer location group (e.g., New York, Other): ", &fields.CustomerLocation},
		}

		for _, p := range prompts {
			line, ok := readLine(in, p.label)
			if !ok {
				return domain.RawTransaction{}, false
			}
			*p.dst = line
		}

		raw, err := input.Parse(fields)
		if err != nil {
			fmt.Printf("\nInvalid input: %v\n", err)
			if !askYesNo(in, "Try again? (y/n): ") {
				return domain.RawTransaction{}, false
			}
			continue
		}
		return raw, true
	}
}

func readLine(in *bufio.Reader, prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func askYesNo(in *bufio.Reader, prompt string) bool {
	answer, ok := readLine(in, prompt)
	if !ok {
		return false
	}
	return strings.EqualFold(answer, "y")
}
