package identity

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/capsule-admin/campaign-governance-service/config"
	"github.com/capsule-admin/campaign-governance-service/pkg/cache"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	claimsCache = cache.NewCache(15 * time.Minute)
)

// Identity is the resolved session identity. UserId is opaque and stable
// for the lifetime of the session.
type Identity struct {
	UserId string
	Token  string
	Claims map[string]interface{}
}

// Client signs in against the remote identity service.
type Client struct {
	TokenURL      string
	IntrospectURL string
	ClientId      string
	ClientSecret  string
	HTTPClient    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	base := cfg.Identity.Host
	if cfg.Identity.Port != "" {
		base = cfg.Identity.Host + ":" + cfg.Identity.Port
	}
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	return &Client{
		TokenURL:      base + cfg.Identity.TokenEndpoint,
		IntrospectURL: base + cfg.Identity.IntrospectEndpoint,
		ClientId:      cfg.Identity.ClientId,
		ClientSecret:  cfg.Identity.ClientSecret,
		HTTPClient:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SignInAnonymously obtains a fresh token from the identity service and
// derives the opaque user id from it.
func (c *Client) SignInAnonymously() (*Identity, error) {

	data := url.Values{}
	data.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, c.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileSigningIn, err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.ClientId + ":" + c.ClientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileSigningIn, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewServerError(errors.ErrWhileSigningIn, nil)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.NewServerError(errors.ErrWhileSigningIn, err)
	}

	accessToken, ok := result["access_token"].(string)
	if !ok {
		return nil, errors.NewServerError(errors.ErrWhileSigningIn, nil)
	}

	userId := subjectFromToken(accessToken)
	if userId == "" {
		// Tokens without a subject still identify a session; mint one.
		userId = "anon-" + uuid.NewString()
	}

	logger.Info("Anonymous sign in completed for user: " + userId)
	return &Identity{UserId: userId, Token: accessToken}, nil
}

// SignInWithCustomToken validates a pre-issued token against the identity
// service and resolves the user id from its claims.
func (c *Client) SignInWithCustomToken(token string) (*Identity, error) {

	claims, err := c.introspect(token)
	if err != nil {
		return nil, err
	}

	active, ok := claims["active"].(bool)
	if !ok || !active {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrUnAuthorizedRequest.Code,
			Message:     errors.ErrUnAuthorizedRequest.Message,
			Description: errors.ErrUnAuthorizedRequest.Description,
		}, http.StatusUnauthorized)
	}

	userId, _ := claims["sub"].(string)
	if userId == "" {
		userId = subjectFromToken(token)
	}
	if userId == "" {
		return nil, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrUnAuthorizedRequest.Code,
			Message:     errors.ErrUnAuthorizedRequest.Message,
			Description: "Token carries no subject claim.",
		}, http.StatusUnauthorized)
	}

	logger.Info("Custom token sign in completed for user: " + userId)
	return &Identity{UserId: userId, Token: token, Claims: claims}, nil
}

func (c *Client) introspect(token string) (map[string]interface{}, error) {

	cachedClaims, found := claimsCache.Get(token)
	if found {
		if claims, ok := cachedClaims.(map[string]interface{}); ok {
			return claims, nil
		}
	}

	data := url.Values{}
	data.Set("token", token)

	req, err := http.NewRequest(http.MethodPost, c.IntrospectURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileIntrospectingToken, err)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.ClientId + ":" + c.ClientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.NewServerError(errors.ErrWhileIntrospectingToken, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewServerError(errors.ErrWhileIntrospectingToken, nil)
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, errors.NewServerError(errors.ErrWhileIntrospectingToken, err)
	}

	claimsCache.Set(token, claims)
	return claims, nil
}

// subjectFromToken reads the sub claim without verifying the signature; the
// identity service already vouched for the token.
func subjectFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Debug("Failed to parse token claims.", "error", err)
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
