package gateway

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"algonest_webclient/internal/model"
)

type multipartForm struct {
	fields   [][2]string
	fileKey  string
	fileName string
	file     []byte
}

func (f *multipartForm) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}

	if f.fileKey != "" {
		part, err := w.CreateFormFile(f.fileKey, f.fileName)
		if err != nil {
			return nil, "", err
		}
		if _, err = part.Write(f.file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *Client) Wallets(ctx context.Context) (*model.Wallets, error) {
	var out model.Wallets
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/wallets",
		auth:     true,
		fallback: "Failed to load wallet",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SaveWallet(ctx context.Context, binding model.WalletBinding) (*Result, error) {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/wallets",
		body: map[string]string{
			"type":           "fiat",
			"coin_name":      binding.CoinName,
			"wallet_address": binding.WalletAddress,
		},
		auth:     true,
		fallback: "Failed to save wallet",
	}, nil)
}

// Invest submits a deposit with its proof of payment as multipart form data.
func (c *Client) Invest(ctx context.Context, d model.Deposit) (*Result, error) {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "/invest",
		form: &multipartForm{
			fields: [][2]string{
				{"amount", strconv.FormatFloat(d.Amount, 'f', -1, 64)},
				{"payment_method", d.PaymentMethod},
				{"narration", d.Narration},
			},
			fileKey:  "proof",
			fileName: d.ProofName,
			file:     d.Proof,
		},
		auth:     true,
		fallback: "Deposit failed.",
	}, nil)
}

func (c *Client) WithdrawalAccount(ctx context.Context) (*model.WithdrawalAccount, error) {
	var out model.WithdrawalAccount
	_, err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/withdrawal",
		auth:     true,
		fallback: "Failed to fetch account balance",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Withdraw(ctx context.Context, req model.WithdrawalRequest) (*Result, error) {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/withdrawal",
		body:     req,
		auth:     true,
		fallback: "Failed to process withdrawal",
	}, nil)
}
