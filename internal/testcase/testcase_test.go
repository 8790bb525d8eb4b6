package testcase_test

import (
	"fmt"
	"testing"

	"github.com/caseloom/caseloom-cli/internal/testcase"
)

func TestParseBlockAllSectionsScrambled(t *testing.T) {
	block := `### Étapes
1. Ouvrir la page
2. Saisir les identifiants
### Résultat attendu
L'utilisateur est connecté
### Titre
Connexion valide
### Données d'entrée
login: admin / mdp: secret
### Préconditions
Compte actif existant`

	records := testcase.ParseAll([]string{block})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != "TEST-1" {
		t.Errorf("ID = %q, want TEST-1", r.ID)
	}
	if r.Title != "Connexion valide" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Preconditions != "Compte actif existant" {
		t.Errorf("Preconditions = %q", r.Preconditions)
	}
	if r.InputData != "login: admin / mdp: secret" {
		t.Errorf("InputData = %q", r.InputData)
	}
	if r.Steps != "1. Ouvrir la page\n2. Saisir les identifiants" {
		t.Errorf("Steps = %q", r.Steps)
	}
	if r.ExpectedResult != "L'utilisateur est connecté" {
		t.Errorf("ExpectedResult = %q", r.ExpectedResult)
	}
}

func TestParseBlockNoMarkers(t *testing.T) {
	records := testcase.ParseAll([]string{"just some free text\nwithout any structure"})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != "TEST-1" {
		t.Errorf("ID = %q, want TEST-1", r.ID)
	}
	if r.Title != "" || r.Preconditions != "" || r.InputData != "" || r.Steps != "" || r.ExpectedResult != "" {
		t.Errorf("expected all fields empty, got %+v", r)
	}
}

func TestParseAllPreservesOrderAndCount(t *testing.T) {
	blocks := []string{
		"### Titre\nPremier cas",
		"malformed, no markers at all",
		"### Titre\nTroisième cas",
	}
	records := testcase.ParseAll(blocks)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, r := range records {
		want := fmt.Sprintf("TEST-%d", i+1)
		if r.ID != want {
			t.Errorf("record %d: ID = %q, want %q", i, r.ID, want)
		}
	}
	if records[0].Title != "Premier cas" {
		t.Errorf("record 0 Title = %q", records[0].Title)
	}
	if records[1].Title != "" {
		t.Errorf("record 1 Title = %q, want empty", records[1].Title)
	}
	if records[2].Title != "Troisième cas" {
		t.Errorf("record 2 Title = %q", records[2].Title)
	}
}

func TestParseAllEmptyInput(t *testing.T) {
	if got := testcase.ParseAll(nil); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestParseBlockRepeatedSection(t *testing.T) {
	block := "### Titre\nAncien titre\n### Titre\nNouveau titre"
	records := testcase.ParseAll([]string{block})
	if records[0].Title != "Nouveau titre" {
		t.Fatalf("expected last marker to win, got %q", records[0].Title)
	}
}

func TestParseBlockMarkerNormalization(t *testing.T) {
	block := "###   TITRE  \nEn majuscules\n###  résultat   ATTENDU\nOK"
	records := testcase.ParseAll([]string{block})
	if records[0].Title != "En majuscules" {
		t.Errorf("Title = %q", records[0].Title)
	}
	if records[0].ExpectedResult != "OK" {
		t.Errorf("ExpectedResult = %q", records[0].ExpectedResult)
	}
}

func TestParseBlockUnknownMarkerTerminatesSection(t *testing.T) {
	block := "### Titre\nLe titre\n### Remarques\ntext that belongs to no field\n### Étapes\nfaire ceci"
	records := testcase.ParseAll([]string{block})
	r := records[0]
	if r.Title != "Le titre" {
		t.Errorf("Title = %q, want %q (unknown marker must end the section)", r.Title, "Le titre")
	}
	if r.Steps != "faire ceci" {
		t.Errorf("Steps = %q", r.Steps)
	}
}

func TestSplitBlocks(t *testing.T) {
	text := `### Titre
Cas un
---
### Titre
Cas deux
---
`
	blocks := testcase.SplitBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %q", len(blocks), blocks)
	}
	records := testcase.ParseAll(blocks)
	if records[0].Title != "Cas un" || records[1].Title != "Cas deux" {
		t.Fatalf("unexpected titles: %q, %q", records[0].Title, records[1].Title)
	}
}

func TestSplitBlocksNoSeparator(t *testing.T) {
	blocks := testcase.SplitBlocks("### Titre\nSeul cas")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
}

func TestSplitBlocksEmptyText(t *testing.T) {
	if blocks := testcase.SplitBlocks("  \n---\n  "); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %q", blocks)
	}
}
