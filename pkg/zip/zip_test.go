package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"
)

func TestArchiveRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	data, err := Archive([]Entry{
		{Filename: "a.json", Modified: at, Data: []byte(`{"id":"a"}`)},
		{Filename: "a.txt", Data: []byte("variant")},
	})
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("files = %d", len(zr.File))
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	body, _ := io.ReadAll(rc)
	if string(body) != `{"id":"a"}` || zr.File[0].Name != "a.json" {
		t.Fatalf("entry = %s %q", zr.File[0].Name, body)
	}
	if !zr.File[0].Modified.Equal(at) {
		t.Fatalf("modified = %v, want %v", zr.File[0].Modified, at)
	}
}

func TestArchiveRejectsBadNames(t *testing.T) {
	if _, err := Archive([]Entry{{Filename: ""}}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := Archive([]Entry{{Filename: "x"}, {Filename: "x"}}); err == nil {
		t.Fatalf("expected error for duplicate name")
	}
}

func TestArchiveEmpty(t *testing.T) {
	data, err := Archive(nil)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil || len(zr.File) != 0 {
		t.Fatalf("empty archive unreadable: %v", err)
	}
}
