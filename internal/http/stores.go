package http

import "github.com/mrlokans/kindlenotes/internal/entities"

// BookSaver stores converted books.
type BookSaver interface {
	SaveBook(book *entities.Book) error
}

// BookReader provides read access to stored books.
type BookReader interface {
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
}

// LibraryStore is what the library-backed endpoints need from the database.
type LibraryStore interface {
	BookSaver
	BookReader
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping() error
}
