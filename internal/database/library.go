package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/kindlenotes/internal/entities"
)

// SaveBook stores a converted notebook. A book with the same title and author
// is replaced: its chapters and annotations are dropped and the new ones are
// written in document order.
func (d *Database) SaveBook(book *entities.Book) error {
	resetForInsert(book)

	return d.DB.Transaction(func(tx *gorm.DB) error {
		var existing entities.Book
		err := tx.Where("title = ? AND author = ?", book.Title, book.Author).First(&existing).Error

		switch {
		case err == nil:
			if err := deleteOutline(tx, existing.ID); err != nil {
				return err
			}
			book.ID = existing.ID
			book.CreatedAt = existing.CreatedAt
			return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(book).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(book).Error
		default:
			return fmt.Errorf("failed to look up book %q: %w", book.Title, err)
		}
	})
}

func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := withOutline(d.DB).First(&book, id).Error; err != nil {
		return nil, err
	}
	reindex(&book)
	return &book, nil
}

func (d *Database) GetBookByTitleAndAuthor(title, author string) (*entities.Book, error) {
	var book entities.Book
	err := withOutline(d.DB).Where("title = ? AND author = ?", title, author).First(&book).Error
	if err != nil {
		return nil, err
	}
	reindex(&book)
	return &book, nil
}

func (d *Database) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	if err := withOutline(d.DB).Order("title ASC").Find(&books).Error; err != nil {
		return nil, err
	}
	for i := range books {
		reindex(&books[i])
	}
	return books, nil
}

func (d *Database) DeleteBook(id uint) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteOutline(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&entities.Book{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (d *Database) GetStats() (totalBooks int64, totalAnnotations int64, err error) {
	err = d.DB.Model(&entities.Book{}).Count(&totalBooks).Error
	if err != nil {
		return
	}
	err = d.DB.Model(&entities.Annotation{}).Count(&totalAnnotations).Error
	return
}

func withOutline(db *gorm.DB) *gorm.DB {
	byPosition := func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}
	return db.Preload("Chapters", byPosition).Preload("Chapters.Annotations", byPosition)
}

func deleteOutline(tx *gorm.DB, bookID uint) error {
	var chapterIDs []uint
	if err := tx.Model(&entities.Chapter{}).Where("book_id = ?", bookID).Pluck("id", &chapterIDs).Error; err != nil {
		return fmt.Errorf("failed to list chapters of book %d: %w", bookID, err)
	}
	if len(chapterIDs) > 0 {
		if err := tx.Where("chapter_id IN ?", chapterIDs).Delete(&entities.Annotation{}).Error; err != nil {
			return fmt.Errorf("failed to delete annotations of book %d: %w", bookID, err)
		}
	}
	if err := tx.Where("book_id = ?", bookID).Delete(&entities.Chapter{}).Error; err != nil {
		return fmt.Errorf("failed to delete chapters of book %d: %w", bookID, err)
	}
	return nil
}

// resetForInsert clears row IDs so the outline is written as new rows and
// numbers chapters and annotations in their current order.
func resetForInsert(book *entities.Book) {
	book.ID = 0
	for i := range book.Chapters {
		chapter := &book.Chapters[i]
		chapter.ID = 0
		chapter.BookID = 0
		chapter.Position = i
		for j := range chapter.Annotations {
			annotation := &chapter.Annotations[j]
			annotation.ID = 0
			annotation.ChapterID = 0
			annotation.Position = j
		}
	}
}

func reindex(book *entities.Book) {
	for i := range book.Chapters {
		book.Chapters[i].Reindex()
	}
}
