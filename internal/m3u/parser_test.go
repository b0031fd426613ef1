package m3u

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func collect(t *testing.T, doc string) []Entry {
	t.Helper()
	return slices.Collect(Parse(strings.NewReader(doc)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Entry
	}{
		{
			name: "pairs metadata with following address",
			doc:  "#EXTM3U\n#EXTINF:-1,Test ViuTV HD\nhttp://a.test/1\n#EXTINF:-1,FOX News\nhttp://b.test/2\n",
			want: []Entry{
				{Name: "Test ViuTV HD", Address: "http://a.test/1"},
				{Name: "FOX News", Address: "http://b.test/2"},
			},
		},
		{
			name: "blank lines and CRLF are tolerated",
			doc:  "#EXTM3U\r\n\r\n#EXTINF:-1 tvg-id=\"jade\",Jade\r\n\r\nhttps://c.test/jade.m3u8\r\n",
			want: []Entry{{Name: "Jade", Address: "https://c.test/jade.m3u8"}},
		},
		{
			name: "address without pending name is dropped",
			doc:  "http://orphan.test/1\n#EXTINF:-1,Pearl\nhttp://d.test/pearl\nhttp://orphan.test/2\n",
			want: []Entry{{Name: "Pearl", Address: "http://d.test/pearl"}},
		},
		{
			name: "consecutive metadata keeps the last name",
			doc:  "#EXTINF:-1,First\n#EXTINF:-1,Second\nhttp://e.test/1\n",
			want: []Entry{{Name: "Second", Address: "http://e.test/1"}},
		},
		{
			name: "trailing metadata without address is dropped",
			doc:  "#EXTINF:-1,RTHK 31\nhttp://f.test/31\n#EXTINF:-1,Dangling\n",
			want: []Entry{{Name: "RTHK 31", Address: "http://f.test/31"}},
		},
		{
			name: "commas inside quoted attributes are ignored",
			doc:  "#EXTINF:-1 tvg-name=\"a,b\" group-title=\"HK, Macau\",Now News\nhttp://g.test/now\n",
			want: []Entry{{Name: "Now News", Address: "http://g.test/now"}},
		},
		{
			name: "unrecognised lines keep the pending name",
			doc:  "#EXTINF:-1,HOY TV\n#EXTVLCOPT:http-user-agent=x\n#EXTGRP:HK\nhttp://h.test/hoy\n",
			want: []Entry{{Name: "HOY TV", Address: "http://h.test/hoy"}},
		},
		{
			name: "metadata without a name clears the pending name",
			doc:  "#EXTINF:-1,J2\n#EXTINF:-1\nhttp://i.test/j2\n",
			want: nil,
		},
		{
			name: "non-stream address lines are ignored",
			doc:  "#EXTINF:-1,Acestream\nacestream://abc\nhttp://j.test/1\n",
			want: []Entry{{Name: "Acestream", Address: "http://j.test/1"}},
		},
		{
			name: "empty document",
			doc:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, tt.doc)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_EveryEntryHasSchemeAndName(t *testing.T) {
	doc := strings.Join([]string{
		"#EXTM3U",
		"garbage line",
		"#EXTINF:-1,",
		"http://a.test/unnamed",
		"#EXTINF:-1,Named",
		"not-a-url",
		"rtmp://b.test/live",
		",,,",
		"https://c.test/orphan",
	}, "\n")

	for e := range Parse(strings.NewReader(doc)) {
		if e.Name == "" {
			t.Errorf("entry with empty name: %+v", e)
		}
		if !strings.Contains(e.Address, "://") {
			t.Errorf("entry without scheme: %+v", e)
		}
	}

	got := collect(t, doc)
	want := []Entry{{Name: "Named", Address: "rtmp://b.test/live"}}
	if !slices.Equal(got, want) {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestParser_StopsWhenConsumerStops(t *testing.T) {
	doc := "#EXTINF:-1,A\nhttp://a.test/1\n#EXTINF:-1,B\nhttp://a.test/2\n"

	var got []Entry
	for e := range Parse(strings.NewReader(doc)) {
		got = append(got, e)
		break
	}

	if len(got) != 1 || got[0].Name != "A" {
		t.Errorf("got %+v, want only the first entry", got)
	}
}

func TestParser_Err(t *testing.T) {
	readErr := errors.New("connection reset")
	p := NewParser(&failingReader{data: []byte("#EXTINF:-1,A\nhttp://a.test/1\n"), err: readErr})

	got := slices.Collect(p.All())
	if len(got) != 1 {
		t.Errorf("expected entries read before the error, got %+v", got)
	}
	if !errors.Is(p.Err(), readErr) {
		t.Errorf("Err() = %v, want %v", p.Err(), readErr)
	}
}

// failingReader returns data once, then err on every later read.
type failingReader struct {
	data []byte
	err  error
}

func (f *failingReader) Read(b []byte) (int, error) {
	if len(f.data) == 0 {
		return 0, f.err
	}
	n := copy(b, f.data)
	f.data = f.data[n:]
	return n, nil
}

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"#EXTINF:-1,ViuTV", "ViuTV"},
		{"#EXTINF:-1 group-title=\"HK\",  翡翠台  ", "翡翠台"},
		{"#EXTINF:-1 tvg-logo=\"http://x/a,b.png\",Pearl", "Pearl"},
		{"#EXTINF:-1", ""},
		{"#EXTINF:-1,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := extractDisplayName(tt.line); got != tt.want {
				t.Errorf("extractDisplayName(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
