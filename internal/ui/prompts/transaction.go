package prompts

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
	"github.com/hance08/fintrack/internal/service"
	"github.com/hance08/fintrack/internal/utils"
)

// FormCollector asks for the fields of a new transaction in one huh form.
// Fields already set in Preset are not asked for again.
type FormCollector struct {
	Preset service.TransactionFields
}

func (c FormCollector) CollectTransactionFields(kind model.Kind) (service.TransactionFields, error) {
	fields := c.Preset
	if fields.Date == "" {
		fields.Date = time.Now().Format(constants.DateFormat)
	}

	var inputs []huh.Field
	if fields.AmountText == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Summe:").
			Description("e.g. 150 or 150.50").
			Value(&fields.AmountText).
			Validate(ValidateAmount))
	}
	if c.Preset.Description == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Beschreibung:").
			Value(&fields.Description))
	}
	if c.Preset.Date == "" {
		inputs = append(inputs, huh.NewInput().
			Title("Datum (dd-MM-yyyy):").
			Description("Press Enter for today").
			Value(&fields.Date))
	}

	if len(inputs) == 0 {
		return fields, nil
	}

	err := huh.NewForm(huh.NewGroup(inputs...).
		Title(fmt.Sprintf("Add %s", kind.Label()))).
		Run()
	if err != nil {
		return service.TransactionFields{}, err
	}

	return fields, nil
}

func ValidateAmount(s string) error {
	_, err := utils.ParseAmount(s)
	return err
}

// PromptKind prompts for income or expense
func PromptKind() (model.Kind, error) {
	kind := model.KindExpense

	err := huh.NewSelect[model.Kind]().
		Title("Choose the transaction type:").
		Options(
			huh.NewOption("Record Expense", model.KindExpense),
			huh.NewOption("Record Income", model.KindIncome),
		).
		Value(&kind).
		Run()

	return kind, err
}

// PromptPosition asks for a 1-based ledger position.
func PromptPosition(count int) (int, error) {
	raw, err := PromptInput(fmt.Sprintf("Position of the transaction to delete (1-%d):", count), "", func(s string) error {
		pos, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("please enter a number")
		}
		if pos < 1 || pos > count {
			return fmt.Errorf("position must be between 1 and %d", count)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(raw))
}

var _ service.InputCollector = FormCollector{}
