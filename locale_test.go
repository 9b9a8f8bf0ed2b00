package qjson

import "testing"

func TestCheckLocaleNoAutoFix(t *testing.T) {
	if !CheckLocale(false) {
		t.Errorf("CheckLocale(false) should always report true")
	}
}

func TestCheckLocaleDetectsHostileEnv(t *testing.T) {
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "de_DE.UTF-8")
	if CheckLocale(true) {
		t.Errorf("expected CheckLocale to detect de_DE as hostile")
	}
}

func TestCheckLocaleAcceptsCEnv(t *testing.T) {
	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "C")
	if !CheckLocale(true) {
		t.Errorf("expected CheckLocale to accept C locale")
	}
}

func TestAutoFixLocaleDefaultTrue(t *testing.T) {
	if !AutoFixLocale() {
		t.Errorf("AutoFixLocale should default to true")
	}
	SetAutoFixLocale(false)
	defer SetAutoFixLocale(true)
	if AutoFixLocale() {
		t.Errorf("SetAutoFixLocale(false) did not take effect")
	}
}
