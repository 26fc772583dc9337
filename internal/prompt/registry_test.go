package prompt

import (
	"strings"
	"testing"

	"prdforge/internal/session"
)

func TestDefaultRegistryIsConsistent(t *testing.T) {
	reg := Default()

	if reg.Count() != 9 {
		t.Errorf("expected 9 sections, got %d", reg.Count())
	}
	for i := 0; i < reg.Count(); i++ {
		if _, ok := reg.WriterInstruction(i); !ok {
			t.Errorf("no writer instruction for index %d", i)
		}
		if _, ok := reg.ReviewerInstruction(i); !ok {
			t.Errorf("no reviewer instruction for index %d", i)
		}
		if _, ok := reg.SectionName(i); !ok {
			t.Errorf("no section name for index %d", i)
		}
	}
	if reg.AssembleInstruction() == "" {
		t.Error("no assemble instruction")
	}
	if reg.FinalReviewInstruction() == "" {
		t.Error("no final review instruction")
	}
}

func TestRegistryFailsClosedOutOfRange(t *testing.T) {
	reg := Default()

	if _, ok := reg.WriterInstruction(-1); ok {
		t.Error("negative index must fail")
	}
	if _, ok := reg.WriterInstruction(reg.Count()); ok {
		t.Error("index at count must fail")
	}
	if _, ok := reg.ReviewerInstruction(reg.Count() + 5); ok {
		t.Error("index beyond count must fail")
	}
}

func TestSectionsMatchRegistry(t *testing.T) {
	reg := Default()
	sections := reg.Sections()

	if len(sections) != reg.Count() {
		t.Fatalf("section table length %d != registry count %d", len(sections), reg.Count())
	}
	for i, sec := range sections {
		if sec.ID != i+1 {
			t.Errorf("section %d has id %d", i, sec.ID)
		}
		if sec.Status != session.SectionPending {
			t.Errorf("section %d starts as %s", sec.ID, sec.Status)
		}
		name, _ := reg.SectionName(i)
		if sec.Name != name {
			t.Errorf("section %d name out of lock-step: %q vs %q", sec.ID, sec.Name, name)
		}
	}
}

func TestNewRegistryValidation(t *testing.T) {
	cases := []struct {
		name     string
		sections []SectionSpec
		assemble string
		final    string
	}{
		{"no sections", nil, "a", "f"},
		{"missing writer", []SectionSpec{{Name: "x", Reviewer: "r"}}, "a", "f"},
		{"missing reviewer", []SectionSpec{{Name: "x", Writer: "w"}}, "a", "f"},
		{"missing name", []SectionSpec{{Writer: "w", Reviewer: "r"}}, "a", "f"},
		{"missing assemble", []SectionSpec{{Name: "x", Writer: "w", Reviewer: "r"}}, "", "f"},
		{"missing final review", []SectionSpec{{Name: "x", Writer: "w", Reviewer: "r"}}, "a", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewRegistry(tc.sections, tc.assemble, tc.final); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestHolderRejectsCountChange(t *testing.T) {
	holder := NewHolder(Default())

	smaller, err := NewRegistry([]SectionSpec{{Name: "only", Writer: "w", Reviewer: "r"}}, "a", "f")
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if err := holder.Set(smaller); err == nil {
		t.Error("expected rejection of a pack with a different section count")
	}
	if holder.Get().Count() != 9 {
		t.Error("holder must keep the previous registry after rejection")
	}
}

func TestWriterInstructionsNameTheirSection(t *testing.T) {
	reg := Default()
	for i := 0; i < reg.Count(); i++ {
		w, _ := reg.WriterInstruction(i)
		name, _ := reg.SectionName(i)
		if !strings.Contains(w, name) {
			t.Errorf("writer instruction %d does not mention its section name %q", i+1, name)
		}
	}
}
