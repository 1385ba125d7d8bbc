package models

// Testament is a top-level grouping of books (e.g. Antigo/Novo Testamento)
type Testament struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Book is a single book of the bible within a testament
type Book struct {
	ID          int    `json:"id" db:"id"`
	Position    int    `json:"position" db:"position"`
	Abbrev      string `json:"abbrev" db:"abbrev"`
	Name        string `json:"name" db:"name"`
	TestamentID int    `json:"testament_id" db:"testament_id"`
}

// Version is a named translation of the text
type Version struct {
	ID     int    `json:"id" db:"id"`
	Abbrev string `json:"abbrev" db:"abbrev"`
	Name   string `json:"name" db:"name"`
	Active bool   `json:"active" db:"active"`
}

// Verse is the smallest addressable unit of text, keyed by
// (version, book, chapter, number)
type Verse struct {
	ID      int    `json:"id" db:"id"`
	Version string `json:"version" db:"version"`
	Book    string `json:"book" db:"book"`
	Chapter int    `json:"chapter" db:"chapter"`
	Number  int    `json:"number" db:"number"`
	Text    string `json:"text" db:"text"`
}

// ChapterVerseCount records how many verses a chapter of a book has.
// Used for bounds-checking navigation.
type ChapterVerseCount struct {
	ID         int `json:"id" db:"id"`
	BookID     int `json:"book_id" db:"book_id"`
	Chapter    int `json:"chapter" db:"chapter"`
	VerseCount int `json:"verse_count" db:"verse_count"`
}

// VerseResult is one resolved entry of a free-form reference search.
// A reference that matches no seeded verse is reported with Found=false
// rather than as an error; the remaining references still resolve.
type VerseResult struct {
	Version string `json:"version"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Number  int    `json:"number"`
	Text    string `json:"text,omitempty"`
	Found   bool   `json:"found"`
}

// VerseSearchResponse is the response for GET /bible/verse?q=
type VerseSearchResponse struct {
	Query   string        `json:"query"`
	Version string        `json:"version"`
	Results []VerseResult `json:"results"`
}

// ReadingList is a curated reading plan stored alongside the bible tables
type ReadingList struct {
	ID      int    `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Content string `json:"content" db:"content"`
}

// ReadingListPage is a paginated reading-list search response
type ReadingListPage struct {
	Items      []ReadingList `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Size       int           `json:"size"`
	TotalPages int           `json:"total_pages"`
}
