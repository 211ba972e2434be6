package ui

import (
	"strings"
	"testing"

	"github.com/nvalla/walletview/pkg/mnemonic"
)

const validTestPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// enterPhrase sets the input text with the cursor at the end and runs the
// derived-state recomputation, like a keystroke would.
func enterPhrase(m RestoreModel, text string) RestoreModel {
	m.input.SetValue(text)
	m.input.SetCursor(len([]rune(text)))
	return m.onMnemonicChanged()
}

func newRestore() RestoreModel {
	return NewRestoreModel(nil, "Wallet 1", false)
}

func TestRestore_TypingComputesSuggestions(t *testing.T) {
	m := enterPhrase(newRestore(), "aban")

	if m.suggestion.Word != "aban" {
		t.Fatalf("Expected suggestion for 'aban', got %q", m.suggestion.Word)
	}
	if len(m.suggestion.Options) == 0 {
		t.Fatal("Expected completion candidates")
	}
	if len(m.invalid) != 0 {
		t.Errorf("In-progress prefix must not be flagged invalid, got %+v", m.invalid)
	}
}

func TestRestore_AcceptSuggestion(t *testing.T) {
	m := enterPhrase(newRestore(), "aban")
	m = m.acceptSuggestion()

	if got := m.input.Value(); got != "abandon " {
		t.Errorf("Expected completed word with trailing space, got %q", got)
	}
	if !m.suggestion.Empty() {
		t.Errorf("Expected no suggestion after the separator, got %+v", m.suggestion)
	}
}

func TestRestore_ProceedInvalidWords(t *testing.T) {
	// Cursor at the end: "qqqq" is implausible, flagged even while typed.
	m := enterPhrase(newRestore(), "abandon qqqq about")
	m.input.SetCursor(7)
	m = m.onMnemonicChanged()

	m = m.proceed()
	if m.errMsg != msgInvalidWords {
		t.Errorf("Expected invalid words message, got %q", m.errMsg)
	}
	if m.result != nil {
		t.Error("Proceed must not produce a result with invalid words")
	}
	if len(m.invalidRanges) != 1 {
		t.Fatalf("Expected 1 flagged range, got %d", len(m.invalidRanges))
	}
	if m.invalidRanges[0] != [2]int{8, 12} {
		t.Errorf("Expected range [8,12), got %v", m.invalidRanges[0])
	}
}

func TestRestore_ProceedWordCount(t *testing.T) {
	m := enterPhrase(newRestore(), "abandon abandon about")
	m = m.proceed()

	if m.errMsg != msgWordCount {
		t.Errorf("Expected word count message, got %q", m.errMsg)
	}
	if m.result != nil {
		t.Error("Proceed must not produce a result for a 3-word phrase")
	}
}

func TestRestore_ProceedChecksumFailure(t *testing.T) {
	corrupted := strings.Replace(validTestPhrase, "about", "abandon", 1)
	m := enterPhrase(newRestore(), corrupted)
	m = m.proceed()

	if m.errMsg != msgChecksum {
		t.Errorf("Expected checksum message, got %q", m.errMsg)
	}
	if m.result != nil {
		t.Error("Corrupted checksum must not produce a result")
	}
}

func TestRestore_ProceedSuccess(t *testing.T) {
	m := enterPhrase(newRestore(), validTestPhrase)
	m = m.proceed()

	if m.errMsg != "" {
		t.Fatalf("Unexpected error: %q", m.errMsg)
	}
	if m.result == nil {
		t.Fatal("Expected a restored account result")
	}
	if len(m.result.Words) != 12 {
		t.Errorf("Expected 12 words, got %d", len(m.result.Words))
	}
	if m.result.Name != "Wallet 1" {
		t.Errorf("Expected default account name, got %q", m.result.Name)
	}
	if m.result.Passphrase != "" {
		t.Errorf("Expected empty passphrase, got %q", m.result.Passphrase)
	}
}

func TestRestore_PassphraseRequiredButBlank(t *testing.T) {
	m := enterPhrase(newRestore(), validTestPhrase)
	m = m.setPassphraseEnabled(true)
	m = m.proceed()

	if m.passphraseError != msgPassphraseBlank {
		t.Errorf("Expected blank passphrase error, got %q", m.passphraseError)
	}
	if m.result != nil {
		t.Error("Blank passphrase must block the result")
	}
}

func TestRestore_ExistingPassphraseErrorAborts(t *testing.T) {
	m := enterPhrase(newRestore(), validTestPhrase)
	m = m.setPassphraseEnabled(true)
	m.passphraseError = msgPassphraseBlank
	m.passInput.SetValue("hunter2")

	m = m.proceed()
	if m.result != nil {
		t.Error("A standing passphrase error must abort proceed unchanged")
	}
	if m.passphraseError != msgPassphraseBlank {
		t.Errorf("Passphrase error must be left unchanged, got %q", m.passphraseError)
	}
}

func TestRestore_ProceedWithPassphrase(t *testing.T) {
	m := enterPhrase(newRestore(), validTestPhrase)
	m = m.setPassphraseEnabled(true)
	m.passInput.SetValue("hunter2")

	m = m.proceed()
	if m.result == nil {
		t.Fatal("Expected a result with a filled passphrase")
	}
	if m.result.Passphrase != "hunter2" {
		t.Errorf("Expected passphrase carried into result, got %q", m.result.Passphrase)
	}
}

func TestRestore_DisablingPassphraseClearsIt(t *testing.T) {
	m := newRestore()
	m = m.setPassphraseEnabled(true)
	m.passInput.SetValue("hunter2")
	m.passphraseError = msgPassphraseBlank

	m = m.setPassphraseEnabled(false)
	if m.passInput.Value() != "" {
		t.Error("Disabling the passphrase must clear its text")
	}
	if m.passphraseError != "" {
		t.Error("Disabling the passphrase must clear its error")
	}
}

func TestRestore_ErrorShownClears(t *testing.T) {
	m := enterPhrase(newRestore(), "abandon abandon about")
	m = m.proceed()
	if m.errMsg == "" {
		t.Fatal("Setup: expected an error")
	}

	m = m.errorShown()
	if m.errMsg != "" || m.invalidRanges != nil {
		t.Error("errorShown must clear the message and flagged ranges")
	}
}

func TestRestore_SelectCoinsShown(t *testing.T) {
	m := newRestore()
	m = m.selectCoinsShown(1)
	if m.coinsPreset != 1 {
		t.Errorf("Expected preset 1, got %d", m.coinsPreset)
	}
	m = m.selectCoinsShown(99)
	if m.coinsPreset != 1 {
		t.Error("Out-of-range preset must be ignored")
	}
}

func TestRestore_ThirdPartyKeyboardPersisted(t *testing.T) {
	svc := newFakeService()
	m := NewRestoreModel(svc, "Wallet 1", false)

	m = m.setAllowThirdPartyKeyboard(true)
	if !m.allowThirdPartyKeyboard {
		t.Error("Expected flag set on the model")
	}
	if !svc.keyboard {
		t.Error("Expected flag persisted through the prefs collaborator")
	}
}

func TestRestore_LeniencyMatchesEngine(t *testing.T) {
	// The presenter's display state must agree with the engine directly.
	text := "abandon ab"
	m := enterPhrase(newRestore(), text)

	engine := mnemonic.InvalidWords(mnemonic.Tokenize(text), len(text))
	if len(m.invalid) != len(engine) {
		t.Errorf("Presenter flags %d words, engine %d", len(m.invalid), len(engine))
	}
}
