// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-contacts-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:3000"
	defaultTimeout = 15 * time.Second
)

// HTTPClientConfig configures [NewHTTPContactsAPI].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpContactsAPI struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPContactsAPI returns a resty-backed [ContactsAPI].
func NewHTTPContactsAPI(cfg HTTPClientConfig) ContactsAPI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &httpContactsAPI{client: cli}
}

func (h *httpContactsAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpContactsAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpContactsAPI) Register(ctx context.Context, request models.UserRequest) (models.UserResponse, error) {
	var out models.RegisterResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&out).
		Post("/api/users/register")
	if err = checkResponse("register", resp, err); err != nil {
		return models.UserResponse{}, err
	}

	return out.User, nil
}

func (h *httpContactsAPI) Verify(ctx context.Context, verificationToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("verificationToken", verificationToken).
		Get("/api/users/verify/{verificationToken}")
	return checkResponse("verify", resp, err)
}

func (h *httpContactsAPI) ResendVerification(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyEmailRequest{Email: email}).
		Post("/api/users/verify")
	return checkResponse("resend verification", resp, err)
}

func (h *httpContactsAPI) Login(ctx context.Context, request models.UserRequest) (models.LoginResponse, error) {
	var out models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&out).
		Post("/api/users/login")
	if err = checkResponse("login", resp, err); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(out.Token)
	return out, nil
}

func (h *httpContactsAPI) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/users/logout")
	if err = checkResponse("logout", resp, err); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpContactsAPI) Current(ctx context.Context) (models.UserResponse, error) {
	var out models.UserResponse
	resp, err := h.authedRequest(ctx).SetResult(&out).Get("/api/users/current")
	if err = checkResponse("current user", resp, err); err != nil {
		return models.UserResponse{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) UpdateSubscription(ctx context.Context, subscription models.Subscription) (models.UserProfileResponse, error) {
	var out models.UserProfileResponse
	resp, err := h.authedRequest(ctx).
		SetBody(models.SubscriptionRequest{Subscription: subscription}).
		SetResult(&out).
		Patch("/api/users")
	if err = checkResponse("update subscription", resp, err); err != nil {
		return models.UserProfileResponse{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) UploadAvatar(ctx context.Context, filename string, image io.Reader) (string, error) {
	var out models.AvatarResponse
	resp, err := h.authedRequest(ctx).
		SetFileReader("avatar", filename, image).
		SetResult(&out).
		Patch("/api/users/avatars")
	if err = checkResponse("upload avatar", resp, err); err != nil {
		return "", err
	}

	return out.AvatarURL, nil
}

func (h *httpContactsAPI) ListContacts(ctx context.Context, query ContactsQuery) ([]models.Contact, error) {
	req := h.authedRequest(ctx)
	if query.Page > 0 {
		req.SetQueryParam("page", strconv.FormatUint(query.Page, 10))
	}
	if query.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(query.Limit, 10))
	}
	if query.Favorite != nil {
		req.SetQueryParam("favorite", strconv.FormatBool(*query.Favorite))
	}

	out := make([]models.Contact, 0)
	resp, err := req.SetResult(&out).Get("/api/contacts")
	if err = checkResponse("list contacts", resp, err); err != nil {
		return nil, err
	}

	return out, nil
}

func (h *httpContactsAPI) GetContact(ctx context.Context, contactID string) (models.Contact, error) {
	var out models.Contact
	resp, err := h.authedRequest(ctx).
		SetPathParam("contactID", contactID).
		SetResult(&out).
		Get("/api/contacts/{contactID}")
	if err = checkResponse("get contact", resp, err); err != nil {
		return models.Contact{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) CreateContact(ctx context.Context, request models.ContactRequest) (models.Contact, error) {
	var out models.Contact
	resp, err := h.authedRequest(ctx).
		SetBody(request).
		SetResult(&out).
		Post("/api/contacts")
	if err = checkResponse("create contact", resp, err); err != nil {
		return models.Contact{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) UpdateContact(ctx context.Context, contactID string, request models.ContactRequest) (models.Contact, error) {
	var out models.Contact
	resp, err := h.authedRequest(ctx).
		SetPathParam("contactID", contactID).
		SetBody(request).
		SetResult(&out).
		Put("/api/contacts/{contactID}")
	if err = checkResponse("update contact", resp, err); err != nil {
		return models.Contact{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) SetFavorite(ctx context.Context, contactID string, favorite bool) (models.Contact, error) {
	var out models.Contact
	resp, err := h.authedRequest(ctx).
		SetPathParam("contactID", contactID).
		SetBody(models.FavoriteRequest{Favorite: &favorite}).
		SetResult(&out).
		Patch("/api/contacts/{contactID}/favorite")
	if err = checkResponse("set favorite", resp, err); err != nil {
		return models.Contact{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) DeleteContact(ctx context.Context, contactID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("contactID", contactID).
		Delete("/api/contacts/{contactID}")
	return checkResponse("delete contact", resp, err)
}

func (h *httpContactsAPI) Version(ctx context.Context) (models.VersionResponse, error) {
	var out models.VersionResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&out).Get("/api/version")
	if err = checkResponse("version", resp, err); err != nil {
		return models.VersionResponse{}, err
	}

	return out, nil
}

func (h *httpContactsAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkResponse folds the transport error and the status mapping together.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}
