package api

import (
	"html/template"
	"log"
	"net/http"

	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/input"
)

// formPage is the data handed to the index template.
type formPage struct {
	ModelAccuracy int
	Result        *domain.PredictionResult
	Error         string
	Form          map[string]string
}

// ShowForm renders the empty transaction form.
func (h *Handlers) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, formPage{
		ModelAccuracy: int(h.info.TestAccuracy * 100),
		Form:          map[string]string{},
	})
}

// SubmitForm parses the posted attributes, scores the transaction, and
// re-renders the form with the verdict (or the parse error) on top.
func (h *Handlers) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}

	fields := input.Fields{
		Amount:           r.FormValue("amount"),
		Quantity:         r.FormValue("quantity"),
		CustomerAge:      r.FormValue("age"),
		AccountAgeDays:   r.FormValue("account_age"),
		TransactionDate:  r.FormValue("trans_date"),
		TransactionHour:  r.FormValue("hour"),
		PaymentMethod:    r.FormValue("payment_method"),
		ProductCategory:  r.FormValue("product_category"),
		DeviceUsed:       r.FormValue("device_used"),
		CustomerLocation: r.FormValue("customer_location"),
	}

	page := formPage{
		ModelAccuracy: int(h.info.TestAccuracy * 100),
		Form: map[string]string{
			"amount":            fields.Amount,
			"quantity":          fields.Quantity,
			"age":               fields.CustomerAge,
			"account_age":       fields.AccountAgeDays,
			"trans_date":        fields.TransactionDate,
			"hour":              fields.TransactionHour,
			"payment_method":    fields.PaymentMethod,
			"product_category":  fields.ProductCategory,
			"device_used":       fields.DeviceUsed,
			"customer_location": fields.CustomerLocation,
		},
	}

	raw, err := input.Parse(fields)
	if err != nil {
		// Bad user input: report it and keep the form filled in.
		page.Error = err.Error()
		h.renderForm(w, page)
		return
	}

	result, err := h.svc.Evaluate(raw)
	if err != nil {
		page.Error = err.Error()
		h.renderForm(w, page)
		return
	}

	page.Result = result
	h.renderForm(w, page)
}

func (h *Handlers) renderForm(w http.ResponseWriter, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, page); err != nil {
		log.Printf("[api] render error: %v", err)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Fraud Risk Estimator</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, 'Segoe UI', sans-serif;
            background: #f4f5f7;
            color: #1f2430;
            line-height: 1.5;
            padding: 2rem 1rem;
        }
        .container { max-width: 560px; margin: 0 auto; }
        h1 { font-size: 1.4rem; margin-bottom: 0.25rem; }
        .subtitle { color: #5b6472; font-size: 0.85rem; margin-bottom: 1.5rem; }
        form {
            background: #fff;
            border: 1px solid #e2e5ea;
            border-radius: 8px;
            padding: 1.5rem;
        }
        .field { margin-bottom: 0.9rem; }
        label { display: block; font-size: 0.8rem; font-weight: 600; margin-bottom: 0.25rem; }
        input, select {
            width: 100%;
            padding: 0.45rem 0.6rem;
            border: 1px solid #c9ced6;
            border-radius: 5px;
            font-size: 0.9rem;
        }
        button {
            width: 100%;
            padding: 0.6rem;
            margin-top: 0.5rem;
            background: #2454d6;
            color: #fff;
            border: none;
            border-radius: 5px;
            font-size: 0.95rem;
            cursor: pointer;
        }
        .result {
            border-radius: 8px;
            padding: 1rem 1.25rem;
            margin-bottom: 1.5rem;
            font-size: 0.92rem;
        }
        .result.fraud { background: #fdecea; border: 1px solid #f3b4ad; }
        .result.ok { background: #e8f5ec; border: 1px solid #a9d9b7; }
        .result.error { background: #fff4e0; border: 1px solid #ecc98a; }
        .result h2 { font-size: 1rem; margin-bottom: 0.35rem; }
        .reasons { margin: 0.4rem 0 0 1.1rem; }
    </style>
</head>
<body>
<div class="container">
    <h1>Fraud Risk Estimator</h1>
    <p class="subtitle">Model test accuracy: {{.ModelAccuracy}}%</p>

    {{if .Error}}
    <div class="result error">
        <h2>Something went wrong</h2>
        <p>{{.Error}}</p>
    </div>
    {{end}}

    {{if .Result}}
    <div class="result {{if .Result.Label}}fraud{{else}}ok{{end}}">
        <h2>{{if .Result.Label}}Likely Fraudulent{{else}}Likely Not Fraudulent{{end}}</h2>
        <p>{{.Result.Message}}</p>
        {{if .Result.Reasons}}
        <ul class="reasons">
            {{range .Result.Reasons}}<li>{{.}}</li>{{end}}
        </ul>
        {{end}}
    </div>
    {{end}}

    <form method="post" action="/">
        <div class="field">
            <label for="amount">Transaction amount</label>
            <input id="amount" name="amount" type="number" step="0.01" min="0.01" required value="{{index .Form "amount"}}">
        </div>
        <div class="field">
            <label for="quantity">Quantity</label>
            <input id="quantity" name="quantity" type="number" min="1" required value="{{index .Form "quantity"}}">
        </div>
        <div class="field">
            <label for="age">Customer age</label>
            <input id="age" name="age" type="number" min="0" required value="{{index .Form "age"}}">
        </div>
        <div class="field">
            <label for="account_age">Account age (days)</label>
            <input id="account_age" name="account_age" type="number" min="0" required value="{{index .Form "account_age"}}">
        </div>
        <div class="field">
            <label for="trans_date">Transaction date</label>
            <input id="trans_date" name="trans_date" type="date" required value="{{index .Form "trans_date"}}">
        </div>
        <div class="field">
            <label for="hour">Transaction hour (0-23)</label>
            <input id="hour" name="hour" type="number" min="0" max="23" required value="{{index .Form "hour"}}">
        </div>
        <div class="field">
            <label for="payment_method">Payment method</label>
            <input id="payment_method" name="payment_method" placeholder="e.g. Credit Card, PayPal" required value="{{index .Form "payment_method"}}">
        </div>
        <div class="field">
            <label for="product_category">Product category</label>
            <input id="product_category" name="product_category" placeholder="e.g. Electronics" required value="{{index .Form "product_category"}}">
        </div>
        <div class="field">
            <label for="device_used">Device used</label>
            <input id="device_used" name="device_used" placeholder="e.g. Mobile, Desktop" required value="{{index .Form "device_used"}}">
        </div>
        <div class="field">
            <label for="customer_location">Customer location</label>
            <input id="customer_location" name="customer_location" placeholder="e.g. New York, Other" required value="{{index .Form "customer_location"}}">
        </div>
        <button type="submit">Estimate fraud risk</button>
    </form>
</div>
</body>
</html>
`
