package utils

import (
	"strconv"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "s3cret" {
		t.Error("hash must not equal the plaintext")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Error("VerifyPassword rejected the original password")
	}
	if VerifyPassword("wrong", hash) {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateOTP()
		if len(otp) != 6 {
			t.Fatalf("GenerateOTP() = %q; want 6 digits", otp)
		}
		n, err := strconv.Atoi(otp)
		if err != nil {
			t.Fatalf("GenerateOTP() = %q; not numeric", otp)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("GenerateOTP() = %d; out of range", n)
		}
	}
}

func TestGenerateRandomString(t *testing.T) {
	testCases := []int{1, 12, 40}

	for _, limit := range testCases {
		t.Run(strconv.Itoa(limit), func(t *testing.T) {
			s := GenerateRandomString(limit)
			if len(s) != limit {
				t.Errorf("GenerateRandomString(%d) has length %d", limit, len(s))
			}
		})
	}
}
