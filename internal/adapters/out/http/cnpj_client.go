// internal/adapters/out/http/cnpj_client.go
package httpout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agendalog/internal/domain/lookup"
)

// CNPJClient implements lookup.AddressLookup against the BrasilAPI CNPJ
// endpoint.
//
// baseURL example:
// - default: https://brasilapi.com.br
// - tests: httptest server URL
type CNPJClient struct {
	baseURL string
	client  *http.Client
}

func NewCNPJClient(baseURL string) *CNPJClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "https://brasilapi.com.br"
	}
	return &CNPJClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type cnpjResponse struct {
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Municipio   string `json:"municipio"`
	UF          string `json:"uf"`
	CEP         string `json:"cep"`
}

// Lookup resolves the registered address for a CNPJ (digits only).
func (c *CNPJClient) Lookup(ctx context.Context, taxID string) (*lookup.Address, error) {
	if c == nil {
		return nil, fmt.Errorf("cnpj client is nil")
	}

	url := c.baseURL + "/api/cnpj/v1/" + strings.TrimSpace(taxID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, lookup.ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		return nil, fmt.Errorf("cnpj lookup failed status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload cnpjResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &lookup.Address{
		Street:     payload.Logradouro,
		Number:     payload.Numero,
		Complement: payload.Complemento,
		District:   payload.Bairro,
		City:       payload.Municipio,
		State:      payload.UF,
		PostalCode: payload.CEP,
	}, nil
}
