package services

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKid      = "test-key-1"
	testAudience = "client-abc"
	testIssuer   = "https://tenant.example.com/"
)

func newJWKSServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()

	pub := key.Public().(*rsa.PublicKey)
	eBytes := []byte{byte(pub.E >> 16), byte(pub.E >> 8), byte(pub.E)}
	jwks := JWKS{Keys: []JWK{{
		Kty: "RSA",
		Kid: testKid,
		Use: "sig",
		Alg: "RS256",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(eBytes),
	}}}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(jwks)
	}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":        testIssuer,
		"aud":        testAudience,
		"exp":        time.Now().Add(time.Hour).Unix(),
		"iat":        time.Now().Unix(),
		"email":      "ada@example.com",
		"given_name": "Ada",
	}
}

func TestVerify_ValidToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newJWKSServer(t, key)
	defer server.Close()

	verifier := &Auth0Verifier{
		jwks:     NewJWKSClient(server.URL),
		audience: testAudience,
		issuer:   testIssuer,
	}

	claims, err := verifier.Verify(signToken(t, key, testKid, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.GivenName)
}

func TestVerify_MissingGivenNameDefaultsToUnknown(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newJWKSServer(t, key)
	defer server.Close()

	verifier := &Auth0Verifier{
		jwks:     NewJWKSClient(server.URL),
		audience: testAudience,
		issuer:   testIssuer,
	}

	mapClaims := validClaims()
	delete(mapClaims, "given_name")

	claims, err := verifier.Verify(signToken(t, key, testKid, mapClaims))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", claims.GivenName)
}

func TestVerify_Failures(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	server := newJWKSServer(t, key)
	defer server.Close()

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := &Auth0Verifier{
		jwks:     NewJWKSClient(server.URL),
		audience: testAudience,
		issuer:   testIssuer,
	}

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongAud := validClaims()
	wrongAud["aud"] = "someone-else"

	wrongIss := validClaims()
	wrongIss["iss"] = "https://evil.example.com/"

	noEmail := validClaims()
	delete(noEmail, "email")

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"unknown kid", signToken(t, key, "no-such-kid", validClaims())},
		{"wrong signing key", signToken(t, otherKey, testKid, validClaims())},
		{"expired", signToken(t, key, testKid, expired)},
		{"wrong audience", signToken(t, key, testKid, wrongAud)},
		{"wrong issuer", signToken(t, key, testKid, wrongIss)},
		{"no email claim", signToken(t, key, testKid, noEmail)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := verifier.Verify(tc.token)
			assert.Error(t, err)
		})
	}
}

func TestVerify_JWKSEndpointUnreachable(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := &Auth0Verifier{
		jwks:     NewJWKSClient("http://127.0.0.1:1/jwks.json"),
		audience: testAudience,
		issuer:   testIssuer,
	}

	_, err = verifier.Verify(signToken(t, key, testKid, validClaims()))
	assert.Error(t, err)
}

func TestJWKSClient_CachesKeysAcrossCalls(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	hits := 0
	pub := key.Public().(*rsa.PublicKey)
	eBytes := []byte{byte(pub.E >> 16), byte(pub.E >> 8), byte(pub.E)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(JWKS{Keys: []JWK{{
			Kty: "RSA", Kid: testKid, Use: "sig", Alg: "RS256",
			N: base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			E: base64.RawURLEncoding.EncodeToString(eBytes),
		}}})
	}))
	defer server.Close()

	client := NewJWKSClient(server.URL)
	for i := 0; i < 3; i++ {
		_, err := client.GetPublicKey(testKid)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, hits)
}
