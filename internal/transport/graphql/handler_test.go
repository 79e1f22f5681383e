package graphql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
)

func post(t *testing.T, h http.Handler, body, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHTTPHandler_Healthz(t *testing.T) {
	h := NewHTTPHandler(newTestSchema(t, fakeplatform.New()), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPHandler_InvalidSessionHeader(t *testing.T) {
	h := NewHTTPHandler(newTestSchema(t, fakeplatform.New()), nil)
	rec := post(t, h, `{"query":"{ health }"}`, "not valid!")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Errors []struct {
			Message    string
			Extensions map[string]any
		}
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, float64(400), body.Errors[0].Extensions["code"])
}

func TestHTTPHandler_SessionScopedCarts(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 500, "USD")
	h := NewHTTPHandler(newTestSchema(t, fp), nil)

	rec := post(t, h, `{"query":"mutation { addToCart(productId: \"a\", quantity: 3) { id } }"}`, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(t, h, `{"query":"{ cart { totalAmount { centAmount } } }"}`, "alice")
	assert.JSONEq(t, `{"data":{"cart":{"totalAmount":{"centAmount":1500}}}}`, rec.Body.String())

	rec = post(t, h, `{"query":"{ cart { id } }"}`, "bob")
	assert.JSONEq(t, `{"data":{"cart":{"id":"empty"}}}`, rec.Body.String())
	require.Len(t, fp.Lists, 1)
	assert.Equal(t, "cart-alice", fp.Lists[0].Key)
}

func TestHTTPHandler_AnonymousCartIsolatedFromSessions(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 500, "USD")
	h := NewHTTPHandler(newTestSchema(t, fp), nil)

	rec := post(t, h, `{"query":"mutation { addToCart(productId: \"a\", quantity: 1) { id } }"}`, "alice")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = post(t, h, `{"query":"{ cart { id items { quantity } } }"}`, "")
	assert.JSONEq(t, `{"data":{"cart":{"id":"empty","items":[]}}}`, rec.Body.String())

	rec = post(t, h, `{"query":"mutation { placeOrder(shippingAddress: {firstName: \"A\", lastName: \"B\", streetName: \"Main\", streetNumber: \"1\", postalCode: \"1\", city: \"C\", country: \"US\"}, customerEmail: \"x@y.z\") { id } }"}`, "")
	assert.Contains(t, rec.Body.String(), "FAILED_PRECONDITION")

	rec = post(t, h, `{"query":"mutation { addToCart(productId: \"a\", quantity: 2) { items { quantity } } }"}`, "")
	assert.JSONEq(t, `{"data":{"addToCart":{"items":[{"quantity":2}]}}}`, rec.Body.String())

	rec = post(t, h, `{"query":"{ cart { items { quantity } } }"}`, "alice")
	assert.JSONEq(t, `{"data":{"cart":{"items":[{"quantity":1}]}}}`, rec.Body.String())
	require.Len(t, fp.Lists, 2)
}
