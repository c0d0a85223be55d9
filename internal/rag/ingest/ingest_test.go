package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gitalabs/GitaAPI/internal/domain/commonModels"
)

// --- Mocks for BatchIngest ---

type mockEmbedder struct {
	batchFunc func(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error)
}

func (m *mockEmbedder) GetEmbedding(ctx context.Context, query string) ([]float32, error) {
	return nil, nil
}
func (m *mockEmbedder) BatchEmbedding(ctx context.Context, chunks []string, isHuge bool) ([][]float32, error) {
	return m.batchFunc(ctx, chunks, isHuge)
}
func (m *mockEmbedder) ModelName() string { return "mock-embedding-model" }

type mockVectorDB struct {
	upsertFunc func(ctx context.Context, coll string, chunks []commonModels.DocChunk, vectors [][]float32) error
}

func (m *mockVectorDB) Search(ctx context.Context, v []float32) ([]string, []string, error) {
	return nil, nil, nil
}
func (m *mockVectorDB) LookupVerse(ctx context.Context, chapter int, verse int) ([]string, []string, error) {
	return nil, nil, nil
}
func (m *mockVectorDB) GetCachedAnswer(ctx context.Context, v []float32) (string, []string, bool, error) {
	return "", nil, false, nil
}
func (m *mockVectorDB) SaveToCache(ctx context.Context, id string, v []float32, a string, sources []string) error {
	return nil
}
func (m *mockVectorDB) CreateCollection(ctx context.Context, name string) error { return nil }
func (m *mockVectorDB) UpsertBatch(ctx context.Context, coll string, chunks []commonModels.DocChunk, vectors [][]float32) error {
	return m.upsertFunc(ctx, coll, chunks, vectors)
}
func (m *mockVectorDB) CountPoints(ctx context.Context, coll string) (uint64, error) {
	return 0, nil
}

// --- Unit Tests ---

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected commonModels.DocType
	}{
		{"test.pdf", commonModels.PDF},
		{"DOC.DOCX", commonModels.DOCX},
		{"notes.txt", commonModels.TXT},
		{"paper.rtf", commonModels.DOCX},
		{"image.png", commonModels.ERR},
	}

	for _, tt := range tests {
		if got := getDocType(tt.path); got != tt.expected {
			t.Errorf("getDocType(%s) = %v; want %v", tt.path, got, tt.expected)
		}
	}
}

func TestSplitTextIntoChunks(t *testing.T) {
	text := "This is a long sentence. This is another sentence that will be split."
	limit := 30
	overlap := 5

	chunks := splitTextIntoChunks(text, limit, overlap)

	if len(chunks) < 2 {
		t.Errorf("Expected multiple chunks, got %d", len(chunks))
	}

	// Verify overlap (simple check if second chunk contains start of overlap)
	if len(chunks) > 1 {
		lastCharsOfFirst := chunks[0][len(chunks[0])-overlap:]
		if !strings.HasPrefix(chunks[1], lastCharsOfFirst) {
			t.Logf("Note: Basic overlap check failed, ensure logic matches: %s vs %s", lastCharsOfFirst, chunks[1])
		}
	}
}

func TestCleanPageStripsNoise(t *testing.T) {
	body := "Krishna instructs Arjuna on the nature of duty. The wise grieve neither for the living nor for the dead. The soul is never born and never dies. As fire burns wood to ashes, so the fire of knowledge burns all reactions to material activities."

	tests := []struct {
		input   string
		removed string
	}{
		{"The soul is eternal.\n42\n" + body, "42"},
		{"Bhagavad-gītā As It Is 412\n" + body, "412"},
		{"Copyright © 1983 The Bhaktivedanta Book Trust\n" + body, "Copyright"},
	}

	for _, tt := range tests {
		got := CleanPage(tt.input)
		if !strings.Contains(got, "nature of duty") {
			t.Errorf("CleanPage dropped body text: %q", got)
		}
		if strings.Contains(got, tt.removed) {
			t.Errorf("CleanPage kept noise %q in %q", tt.removed, got)
		}
	}
}

func TestCleanPageRepairsJoins(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"We donot understand theLord.", "We do not understand the Lord."},
		{"Read theBhagavadGita daily.", "Read the Bhagavad Gita daily."},
		{"It is hard tounderstand the soul.", "It is hard to understand the soul."},
		{"theSupremePersonalityofGodhead speaks.", "the Supreme Personality of Godhead speaks."},
		{"Krishna tells Arjuna that theSoul is eternal.", "Krishna tells Arjuna that the Soul is eternal."},
	}

	for _, tt := range tests {
		if got := CleanPage(tt.input); got != tt.expected {
			t.Errorf("CleanPage(%q) = %q; want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCleanPageRevertGuard(t *testing.T) {
	// A page that is mostly noise keeps its raw content, whitespace
	// collapsed, instead of shrinking past recognition.
	input := "712\nBhagavad-gītā As It Is\nshort line"
	expected := "712 Bhagavad-gītā As It Is short line"

	if got := CleanPage(input); got != expected {
		t.Errorf("CleanPage(%q) = %q; want reverted %q", input, got, expected)
	}

	// Tiny pages are exempt from the guard
	if got := CleanPage("9\nhi"); got != "hi" {
		t.Errorf("CleanPage tiny page = %q; want %q", got, "hi")
	}
}

func TestVerseTrackerMarkers(t *testing.T) {
	var tracker verseTracker

	tracker.observe("CHAPTER 2 Contents of the Gita Summarized")
	if c, v := tracker.current(); c != 0 || v != 0 {
		t.Errorf("chapter heading alone should annotate nothing, got %d.%d", c, v)
	}

	tracker.observe("TEXT 47 karmany evadhikaras te")
	if c, v := tracker.current(); c != 2 || v != 47 {
		t.Errorf("expected 2.47, got %d.%d", c, v)
	}

	// position carries across chunks until the next marker
	tracker.observe("The purport continues with no marker at all.")
	if c, v := tracker.current(); c != 2 || v != 47 {
		t.Errorf("expected 2.47 carried over, got %d.%d", c, v)
	}

	tracker.observe("TEXTS 13-14 nimitta-matram bhava savya-sachin")
	if c, v := tracker.current(); c != 2 || v != 13 {
		t.Errorf("expected 2.13 from combined marker, got %d.%d", c, v)
	}
}

func TestVerseTrackerCitation(t *testing.T) {
	var tracker verseTracker

	// A citation carries chapter and verse in one marker
	tracker.observe("As stated in Bg. 4.7, whenever there is a decline in religion")
	if c, v := tracker.current(); c != 4 || v != 7 {
		t.Errorf("expected 4.7, got %d.%d", c, v)
	}

	// Bare verse markers before any chapter heading are ignored
	var fresh verseTracker
	fresh.observe("TEXT 12 appears before any chapter heading")
	if c, v := fresh.current(); c != 0 || v != 0 {
		t.Errorf("expected no annotation, got %d.%d", c, v)
	}

	// A prose mention of a chapter does not move the tracker
	tracker.observe("as explained in chapter 2 of this work")
	if c, v := tracker.current(); c != 4 || v != 7 {
		t.Errorf("expected 4.7 unchanged, got %d.%d", c, v)
	}

	// Out-of-range chapter numbers are ignored
	tracker.observe("CHAPTER 99")
	if c, v := tracker.current(); c != 4 || v != 7 {
		t.Errorf("expected 4.7 after bogus chapter, got %d.%d", c, v)
	}
}

func TestFilterFrontMatter(t *testing.T) {
	pages := []rawPage{{Number: 1}, {Number: 9}, {Number: 10}, {Number: 11}}

	kept := filterFrontMatter(pages, 10)
	if len(kept) != 2 || kept[0].Number != 10 {
		t.Errorf("Expected pages 10 and 11, got %+v", kept)
	}

	all := filterFrontMatter(pages, 0)
	if len(all) != 4 {
		t.Errorf("Expected all pages kept, got %d", len(all))
	}
}

func TestBatchIngest(t *testing.T) {
	ctx := context.Background()
	chunks := make([]commonModels.DocChunk, 150) // Should trigger 2 batches (100 + 50)
	for i := range chunks {
		chunks[i] = commonModels.DocChunk{Chunk: "test content"}
	}

	callCount := 0
	vDB := &mockVectorDB{
		upsertFunc: func(ctx context.Context, coll string, c []commonModels.DocChunk, v [][]float32) error {
			callCount++
			return nil
		},
	}

	emb := &mockEmbedder{
		batchFunc: func(ctx context.Context, ch []string, huge bool) ([][]float32, error) {
			return make([][]float32, len(ch)), nil
		},
	}

	err := BatchIngest(ctx, chunks, vDB, emb)

	if err != nil {
		t.Fatalf("BatchIngest failed: %v", err)
	}

	if callCount != 2 {
		t.Errorf("Expected 2 batches to be upserted, got %d", callCount)
	}
}

func TestBatchIngest_Error(t *testing.T) {
	vDB := &mockVectorDB{
		upsertFunc: func(ctx context.Context, coll string, c []commonModels.DocChunk, v [][]float32) error {
			return errors.New("upsert failed")
		},
	}
	emb := &mockEmbedder{
		batchFunc: func(ctx context.Context, ch []string, huge bool) ([][]float32, error) {
			return make([][]float32, len(ch)), nil
		},
	}

	err := BatchIngest(context.Background(), []commonModels.DocChunk{{Chunk: "hi"}}, vDB, emb)
	if err == nil {
		t.Error("Expected error from BatchIngest, got nil")
	}
}

func TestBatchIngestAlignment(t *testing.T) {
	chunks := []commonModels.DocChunk{{Chunk: "one"}, {Chunk: ""}, {Chunk: "two"}}

	upserted := -1
	vDB := &mockVectorDB{
		upsertFunc: func(ctx context.Context, coll string, c []commonModels.DocChunk, v [][]float32) error {
			upserted = len(c)
			if len(c) != len(v) {
				t.Errorf("chunks and vectors misaligned: %d vs %d", len(c), len(v))
			}
			return nil
		},
	}
	emb := &mockEmbedder{
		batchFunc: func(ctx context.Context, ch []string, huge bool) ([][]float32, error) {
			return make([][]float32, len(ch)), nil
		},
	}

	if err := BatchIngest(context.Background(), chunks, vDB, emb); err != nil {
		t.Fatalf("BatchIngest failed: %v", err)
	}
	if upserted != 2 {
		t.Errorf("Expected 2 chunks upserted after dropping the empty one, got %d", upserted)
	}
}

func TestPrepareChunks(t *testing.T) {
	pages := []rawPage{
		{Number: 1, Content: "Page one content."},
		{Number: 2, Content: "Page two content."},
	}
	doc := commonModels.Document{Id: "doc-1"}

	chunks := PrepareChunks(pages, doc, "text-embedding-3-small")

	if len(chunks) != 2 {
		t.Errorf("Expected 2 chunks (one per page), got %d", len(chunks))
	}

	if chunks[0].Doc.Id != "doc-1" || chunks[0].PageNum != 1 {
		t.Errorf("Metadata mismatch in chunk 0: %+v", chunks[0])
	}

	if chunks[0].EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("Model name not carried onto chunk: %+v", chunks[0])
	}
}

func TestPrepareChunksSkipsEmptyPages(t *testing.T) {
	pages := []rawPage{
		{Number: 1, Content: "   \n  "},
		{Number: 2, Content: "Real content survives."},
	}

	chunks := PrepareChunks(pages, commonModels.Document{Id: "doc-1"}, "m")

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].PageNum != 2 {
		t.Errorf("Expected chunk from page 2, got page %d", chunks[0].PageNum)
	}
}

func TestPrepareChunksVerseAnnotation(t *testing.T) {
	pages := []rawPage{
		{Number: 45, Content: "CHAPTER 2 Contents of the Gita Summarized"},
		{Number: 46, Content: "TEXT 11 The Supreme Personality of Godhead said: While speaking learned words you are mourning for what is not worthy of grief."},
		{Number: 47, Content: "The purport carries on without restating the verse number."},
	}
	doc := commonModels.Document{Id: "doc-gita"}

	chunks := PrepareChunks(pages, doc, "gemini-embedding-001")

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0].Chapter != 0 || chunks[0].Verse != 0 {
		t.Errorf("chapter heading chunk should carry no verse, got %d.%d", chunks[0].Chapter, chunks[0].Verse)
	}
	if chunks[1].Chapter != 2 || chunks[1].Verse != 11 {
		t.Errorf("expected 2.11, got %d.%d", chunks[1].Chapter, chunks[1].Verse)
	}
	if chunks[2].Chapter != 2 || chunks[2].Verse != 11 {
		t.Errorf("annotation should carry across pages, got %d.%d", chunks[2].Chapter, chunks[2].Verse)
	}
}
