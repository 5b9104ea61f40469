package git

import (
	"context"
	"errors"
	"testing"
)

func TestMockBackend_ServesChain(t *testing.T) {
	chain := []Commit{
		{Hash: "aaa", Subject: "first"},
		{Hash: "bbb", Subject: "second"},
		{Hash: "ccc", Subject: "third"},
	}
	m := NewMockBackend(chain)
	ctx := context.Background()

	tip, err := m.BranchTip(ctx)
	if err != nil {
		t.Fatalf("BranchTip() error = %v", err)
	}
	if tip.Hash != "ccc" {
		t.Errorf("BranchTip() = %s, expected the last commit", tip.Hash)
	}

	got, err := m.AncestryChain(ctx, "bbb", tip.Hash, ChainOptions{})
	if err != nil {
		t.Fatalf("AncestryChain() error = %v", err)
	}
	if len(got) != 2 || got[0].Hash != "bbb" || got[1].Hash != "ccc" {
		t.Errorf("AncestryChain() = %v, expected bbb..ccc", got)
	}

	if _, err := m.AncestryChain(ctx, "zzz", tip.Hash, ChainOptions{}); !errors.Is(err, ErrDisjointHistory) {
		t.Errorf("AncestryChain(zzz) error = %v, expected ErrDisjointHistory", err)
	}
}

func TestMockBackend_CheckoutMovesHead(t *testing.T) {
	m := NewMockBackend([]Commit{{Hash: "aaa"}, {Hash: "bbb"}})
	ctx := context.Background()

	if err := m.Checkout(ctx, "aaa"); err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	head, err := m.CheckedOut(ctx)
	if err != nil {
		t.Fatalf("CheckedOut() error = %v", err)
	}
	if head != "aaa" {
		t.Errorf("CheckedOut() = %s, expected aaa", head)
	}
	if len(m.Checkouts) != 1 {
		t.Errorf("Checkouts = %v, expected one recorded checkout", m.Checkouts)
	}

	m.CheckoutErr = errors.New("boom")
	if err := m.Checkout(ctx, "bbb"); err == nil {
		t.Errorf("Checkout() succeeded despite the injected error")
	}
	if head, _ := m.CheckedOut(ctx); head != "aaa" {
		t.Errorf("CheckedOut() = %s, expected the failed checkout to not move HEAD", head)
	}
}
