package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateEMIHandler_OK(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/calculate-emi",
		`{"principal":500000,"interest_rate":10,"tenure_months":36,"processing_fee":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{
		"emi": 16133.59,
		"total_payment": 580809.37,
		"total_interest": 80809.37,
		"principal": 500000,
		"monthly_rate": 0.8333
	}`, w.Body.String())
}

func TestCalculateEMIHandler_BadRequest(t *testing.T) {
	r := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"principal":`},
		{name: "wrong type", body: `{"principal":"a lot","interest_rate":10,"tenure_months":12}`},
		{name: "zero rate", body: `{"principal":1000,"interest_rate":0,"tenure_months":12}`},
		{name: "rate above 100", body: `{"principal":1000,"interest_rate":150,"tenure_months":12}`},
		{name: "missing tenure", body: `{"principal":1000,"interest_rate":10}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/calculate-emi", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestCalculateEMIHandler_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t, nil)

	for _, path := range []string{"/api/calculate-emi", "/api/compare-loans", "/api/ai-chat"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
		assert.Equal(t, "method not allowed", decode(t, w)["error"], path)
	}

	w := doJSON(t, r, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompareLoansHandler(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/compare-loans", `{"loans":[
		{"id":"option_a","name":"Bank C - Quick Cash","principal":500000,"interest_rate":13,"tenure_months":36,"processing_fee":5000},
		{"id":"option_b","name":"Bank D - Fast Track","principal":500000,"interest_rate":14,"tenure_months":24,"processing_fee":2000}
	]}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "option_b", body["best_loan_id"])
	assert.Equal(t, 2.0, body["total_compared"])
	assert.Contains(t, body["ai_insight"], "Choosing Bank D - Fast Track over Bank C - Quick Cash")

	comparisons := body["comparisons"].([]any)
	require.Len(t, comparisons, 2)
	first := comparisons[0].(map[string]any)
	assert.Equal(t, "Bank D - Fast Track", first["loan_name"])
	assert.Equal(t, 1.0, first["rank"])
	assert.Equal(t, "Best Overall", first["badge"])
	assert.Equal(t, 0.0, first["savings_vs_first"])

	second := comparisons[1].(map[string]any)
	assert.Equal(t, 33336.54, second["savings_vs_first"])
}

func TestCompareLoansHandler_BatchSize(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/compare-loans",
		`{"loans":[{"id":"a","name":"A","principal":1000,"interest_rate":10,"tenure_months":12}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "invalid batch size")
}

func TestCalculatePrepaymentHandler(t *testing.T) {
	r := newTestRouter(t, nil)
	base := `"principal":5000000,"interest_rate":9.5,"tenure_months":240,"prepayment_amount":500000,"prepayment_month":24`

	w := doJSON(t, r, http.MethodPost, "/api/calculate-prepayment", `{`+base+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, 46606.56, body["original_emi"])
	assert.Equal(t, 192.0, body["new_tenure"])
	assert.Equal(t, 48.0, body["months_saved"])
	assert.Equal(t, 63.0, body["break_even_months"])
	assert.NotContains(t, body, "ai_insight")

	w = doJSON(t, r, http.MethodPost, "/api/calculate-prepayment", `{`+base+`,"with_insight":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode(t, w)["ai_insight"], "48 months earlier")
}

func TestCalculatePrepaymentHandler_MonthOutOfRange(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/calculate-prepayment",
		`{"principal":500000,"interest_rate":10,"tenure_months":36,"prepayment_amount":1000,"prepayment_month":36}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmortizationScheduleHandler(t *testing.T) {
	r := newTestRouter(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/amortization-schedule",
		`{"principal":100000,"interest_rate":12,"tenure_months":12}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, 12.0, body["total_months"])
	assert.InDelta(t, 100000.0, body["total_principal"], 0.005*12)

	schedule := body["schedule"].([]any)
	require.Len(t, schedule, 12)
	last := schedule[11].(map[string]any)
	assert.Equal(t, 12.0, last["month"])
	assert.Equal(t, 0.0, last["remaining_balance"])
}
