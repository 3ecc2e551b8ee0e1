package services

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWKS struct {
	Keys []JWK `json:"keys"`
}

type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	Alg string `json:"alg"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwksCache struct {
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
	mu        sync.RWMutex
}

// JWKSClient fetches and caches the identity provider's RSA signing keys.
// Keys are refreshed at most once per TTL window, or on a cache miss for an
// unknown kid (which covers provider key rotation).
type JWKSClient struct {
	cache      *jwksCache
	httpClient *http.Client
	jwksURL    string
}

func NewJWKSClient(jwksURL string) *JWKSClient {
	return &JWKSClient{
		cache: &jwksCache{
			keys: make(map[string]*rsa.PublicKey),
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		jwksURL:    jwksURL,
	}
}

func (c *JWKSClient) fetchKeys() error {
	resp, err := c.httpClient.Get(c.jwksURL)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	c.cache.keys = make(map[string]*rsa.PublicKey)
	for _, key := range jwks.Keys {
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue
		}
		c.cache.keys[key.Kid] = pubKey
	}
	c.cache.expiresAt = time.Now().Add(24 * time.Hour)
	return nil
}

func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}

	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	var e int
	for _, b := range eBytes {
		e = e<<8 | int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: e,
	}, nil
}

// GetPublicKey returns the signing key for kid, refreshing the cache when the
// key is unknown or the cache has expired.
func (c *JWKSClient) GetPublicKey(kid string) (*rsa.PublicKey, error) {
	c.cache.mu.RLock()
	if key, ok := c.cache.keys[kid]; ok && time.Now().Before(c.cache.expiresAt) {
		c.cache.mu.RUnlock()
		return key, nil
	}
	c.cache.mu.RUnlock()

	if err := c.fetchKeys(); err != nil {
		return nil, err
	}

	c.cache.mu.RLock()
	defer c.cache.mu.RUnlock()
	if key, ok := c.cache.keys[kid]; ok {
		return key, nil
	}
	return nil, fmt.Errorf("public key with kid %s not found", kid)
}

// Keyfunc adapts the client to golang-jwt's token verification hook.
func (c *JWKSClient) Keyfunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unsupported algorithm: %v", token.Header["alg"])
	}
	kid, ok := token.Header["kid"].(string)
	if !ok || kid == "" {
		return nil, fmt.Errorf("token header missing kid")
	}
	return c.GetPublicKey(kid)
}
