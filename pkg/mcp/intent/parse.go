package intent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/hugohenrick/moneywise/internal/domain"
	"github.com/hugohenrick/moneywise/internal/domain/transaction"
	"github.com/shopspring/decimal"
)

// ErrInvalidParameters ocorre quando os parâmetros não formam um objeto JSON
var ErrInvalidParameters = errors.New("parâmetros não formam um objeto JSON")

// Rótulos dos campos obrigatórios usados na mensagem de dados faltantes
const (
	fieldCustomerName = "nome do cliente"
	fieldPhone        = "telefone"
	fieldAmount       = "valor"
	fieldDescription  = "descrição"
	fieldType         = "tipo (receita ou despesa)"
	fieldProductName  = "nome do produto"
	fieldProductCode  = "código do produto"
	fieldPrice        = "preço"
)

// DecodeParameters converte o texto JSON dos parâmetros em um mapa.
// Texto vazio ou "null" equivale a nenhum parâmetro.
func DecodeParameters(parametersJSON string) (map[string]interface{}, error) {
	trimmed := strings.TrimSpace(parametersJSON)
	if trimmed == "" || trimmed == "null" {
		return map[string]interface{}{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	dec.UseNumber()

	var params map[string]interface{}
	if err := dec.Decode(&params); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: conteúdo após o objeto", ErrInvalidParameters)
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	return params, nil
}

// Parse converte a ação e o mapa de parâmetros em uma variante tipada de Intent
func Parse(action string, params map[string]interface{}) Intent {
	name := strings.ToLower(strings.TrimSpace(action))

	if nav, ok := navigation[name]; ok {
		return nav
	}
	if metric, ok := queries[name]; ok {
		return Query{Metric: metric}
	}
	if lookup, ok := lookups[name]; ok {
		lookup.Term = lookupTerm(lookup.Entity, params)
		return lookup
	}

	switch name {
	case "", strings.ToLower(ActionUnknown), strings.ToLower(ActionUnknownCommand):
		return Unknown{}
	case strings.ToLower(ActionAddCustomer):
		return parseAddCustomer(params)
	case strings.ToLower(ActionAddCreditEntry):
		return parseAddCreditEntry(params)
	case strings.ToLower(ActionAddTransaction):
		return parseAddTransaction(params)
	case strings.ToLower(ActionAddProduct):
		return parseAddProduct(params)
	case strings.ToLower(ActionSendReport):
		return SendReport{WhatsappNumber: getString(params, "whatsappNumber", "phone")}
	}

	return Unimplemented{Action: strings.TrimSpace(action)}
}

func parseAddCustomer(params map[string]interface{}) Intent {
	in := AddCustomer{
		Name:    getString(params, "customerName", "name"),
		Phone:   getString(params, "phone", "customerPhone"),
		Email:   getString(params, "email"),
		Address: getString(params, "address"),
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, fieldCustomerName)
	}
	if in.Phone == "" {
		missing = append(missing, fieldPhone)
	}
	if len(missing) > 0 {
		return MissingFields{
			Action:  "adicionar um cliente",
			Fields:  missing,
			Example: `"Adicionar cliente João Silva, telefone (11) 91234-5678"`,
		}
	}
	return in
}

func parseAddCreditEntry(params map[string]interface{}) Intent {
	in := AddCreditEntry{
		CustomerName:   getString(params, "customerName", "name"),
		WhatsappNumber: getString(params, "whatsappNumber"),
		Notes:          getString(params, "notes"),
	}

	var missing []string
	if in.CustomerName == "" {
		missing = append(missing, fieldCustomerName)
	}
	amount, ok := getAmount(params, "amount", "value")
	if !ok {
		missing = append(missing, fieldAmount)
	}
	if len(missing) > 0 {
		return MissingFields{
			Action:  "registrar um fiado",
			Fields:  missing,
			Example: `"Registrar fiado de R$ 50 para Maria"`,
		}
	}
	in.Amount = amount

	// vencimento inválido não impede o registro, apenas gera um aviso
	if raw := getString(params, "dueDate"); raw != "" {
		if due, err := domain.ParseDate(raw); err == nil {
			in.DueDate = &due
		} else {
			in.InvalidDueDate = raw
		}
	}
	return in
}

func parseAddTransaction(params map[string]interface{}) Intent {
	in := AddTransaction{
		Description: getString(params, "description"),
	}

	var missing []string
	if in.Description == "" {
		missing = append(missing, fieldDescription)
	}
	amount, ok := getAmount(params, "amount", "value")
	if !ok {
		missing = append(missing, fieldAmount)
	}
	txType, ok := transaction.ParseType(getString(params, "type"))
	if !ok {
		missing = append(missing, fieldType)
	}
	if len(missing) > 0 {
		return MissingFields{
			Action:  "registrar um lançamento no caderno",
			Fields:  missing,
			Example: `"Registrar receita de R$ 120 com a descrição venda de bolos"`,
		}
	}
	in.Amount = amount
	in.Type = txType
	return in
}

func parseAddProduct(params map[string]interface{}) Intent {
	in := AddProduct{
		Name:     getString(params, "productName", "name"),
		Code:     getString(params, "productCode", "code"),
		Category: getString(params, "category"),
		Stock:    getString(params, "stock"),
	}

	var missing []string
	if in.Name == "" {
		missing = append(missing, fieldProductName)
	}
	if in.Code == "" {
		missing = append(missing, fieldProductCode)
	}
	// preço zero é válido: verifica-se a presença, não o valor
	price, ok := getAmount(params, "price")
	if !ok {
		missing = append(missing, fieldPrice)
	}
	if len(missing) > 0 {
		return MissingFields{
			Action:  "cadastrar um produto",
			Fields:  missing,
			Example: `"Cadastrar produto Café 500g, código CAF500, preço 18,90"`,
		}
	}
	in.Price = price
	return in
}

func lookupTerm(entity Entity, params map[string]interface{}) string {
	switch entity {
	case EntityCustomer, EntityCreditEntry:
		return getString(params, "customerName", "name")
	case EntityProduct:
		return getString(params, "productName", "productCode", "name", "code")
	case EntityTransaction:
		return getString(params, "description")
	}
	return ""
}

// getString obtém o primeiro parâmetro presente entre as chaves, como texto
func getString(params map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		value, ok := params[key]
		if !ok || value == nil {
			continue
		}

		var s string
		switch v := value.(type) {
		case string:
			s = v
		case json.Number:
			s = v.String()
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			s = strconv.Itoa(v)
		case bool:
			s = strconv.FormatBool(v)
		default:
			continue
		}

		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

// getAmount obtém um valor monetário não negativo, aceitando número ou texto
// ("50", "50.5", "50,50", "R$ 1.234,56")
func getAmount(params map[string]interface{}, keys ...string) (decimal.Decimal, bool) {
	for _, key := range keys {
		value, ok := params[key]
		if !ok || value == nil {
			continue
		}

		var (
			amount decimal.Decimal
			err    error
		)
		switch v := value.(type) {
		case json.Number:
			amount, err = decimal.NewFromString(v.String())
		case float64:
			amount = decimal.NewFromFloat(v)
		case int:
			amount = decimal.NewFromInt(int64(v))
		case string:
			amount, err = parseMoney(v)
		default:
			continue
		}

		if err == nil && !amount.IsNegative() {
			return amount, true
		}
	}
	return decimal.Zero, false
}

var (
	currencyPrefix = regexp.MustCompile(`(?i)^r\$`)
	thousandsOnly  = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
)

// parseMoney interpreta valores digitados no formato brasileiro ou internacional.
// Ponto seguido de grupos de três dígitos é separador de milhar: "1.500" vale 1500.
func parseMoney(raw string) (decimal.Decimal, error) {
	s := currencyPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
	s = strings.ReplaceAll(s, " ", "")

	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case comma >= 0 && dot >= 0 && comma > dot:
		// 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case comma >= 0 && dot >= 0:
		// 1,234.56
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	case thousandsOnly.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
	}

	if s == "" {
		return decimal.Zero, errors.New("valor vazio")
	}
	return decimal.NewFromString(s)
}
