package crypto

import (
	"bytes"
	"crypto/rsa"
	"testing"
)

func TestWrapUnwrapRoomKey_RoundTrip(t *testing.T) {
	cipher := NewAESGCM()
	key, err := cipher.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	key.RoomID = "room-7"

	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	// The sender only ever sees the recipient's exported public key.
	der, err := recipient.ExportPublicKey()
	if err != nil {
		t.Fatalf("ExportPublicKey error: %v", err)
	}
	public, err := ImportPublicKey(der)
	if err != nil {
		t.Fatalf("ImportPublicKey error: %v", err)
	}

	wrapped, err := WrapRoomKey(key, cipher, public)
	if err != nil {
		t.Fatalf("WrapRoomKey error: %v", err)
	}
	if bytes.Contains(wrapped, key.Material) {
		t.Fatal("wrapped blob leaks raw key material")
	}

	unwrapped, err := recipient.UnwrapRoomKey(wrapped, "room-7", cipher)
	if err != nil {
		t.Fatalf("UnwrapRoomKey error: %v", err)
	}
	if !bytes.Equal(unwrapped.Material, key.Material) {
		t.Fatal("unwrapped key differs from original")
	}
	if unwrapped.RoomID != "room-7" {
		t.Fatalf("unwrapped RoomID = %q, want room-7", unwrapped.RoomID)
	}
}

func TestUnwrapRoomKey_WrongRoomFails(t *testing.T) {
	cipher := NewAESGCM()
	key, _ := cipher.GenerateKey()
	key.RoomID = "room-7"

	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	wrapped, err := WrapRoomKey(key, cipher, mustPublic(t, recipient))
	if err != nil {
		t.Fatalf("WrapRoomKey error: %v", err)
	}

	// The OAEP label binds the blob to its room; replaying it for
	// another room must fail.
	if _, err := recipient.UnwrapRoomKey(wrapped, "room-8", cipher); err == nil {
		t.Fatal("expected unwrap for the wrong room to fail")
	}
}

func TestUnwrapRoomKey_WrongRecipientFails(t *testing.T) {
	cipher := NewAESGCM()
	key, _ := cipher.GenerateKey()
	key.RoomID = "room-7"

	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	eavesdropper, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	wrapped, err := WrapRoomKey(key, cipher, mustPublic(t, recipient))
	if err != nil {
		t.Fatalf("WrapRoomKey error: %v", err)
	}

	if _, err := eavesdropper.UnwrapRoomKey(wrapped, "room-7", cipher); err == nil {
		t.Fatal("expected unwrap with the wrong private key to fail")
	}
}

func TestKeyPair_ExportImport(t *testing.T) {
	pair, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	der, err := pair.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	restored, err := ImportKeyPair(der)
	if err != nil {
		t.Fatalf("ImportKeyPair error: %v", err)
	}

	// The restored pair must be able to unwrap what the original
	// public key wrapped.
	cipher := NewAESGCM()
	key, _ := cipher.GenerateKey()
	key.RoomID = "room-1"

	wrapped, err := WrapRoomKey(key, cipher, mustPublic(t, pair))
	if err != nil {
		t.Fatalf("WrapRoomKey error: %v", err)
	}
	unwrapped, err := restored.UnwrapRoomKey(wrapped, "room-1", cipher)
	if err != nil {
		t.Fatalf("UnwrapRoomKey error: %v", err)
	}
	if !bytes.Equal(unwrapped.Material, key.Material) {
		t.Fatal("restored pair unwrapped different material")
	}
}

func TestImportPublicKey_Garbage(t *testing.T) {
	if _, err := ImportPublicKey([]byte("not a DER key")); err == nil {
		t.Fatal("expected garbage public key import to fail")
	}
}

func mustPublic(t *testing.T, pair *KeyPair) *rsa.PublicKey {
	t.Helper()
	der, err := pair.ExportPublicKey()
	if err != nil {
		t.Fatalf("ExportPublicKey error: %v", err)
	}
	public, err := ImportPublicKey(der)
	if err != nil {
		t.Fatalf("ImportPublicKey error: %v", err)
	}
	return public
}
