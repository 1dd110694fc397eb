package controllers

import (
	"net/http"
	"time"

	"github.com/Gokulsuresh1918/winter-arc/config"
	"github.com/Gokulsuresh1918/winter-arc/middlewares"
	"github.com/Gokulsuresh1918/winter-arc/models"
	"github.com/Gokulsuresh1918/winter-arc/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListBooks(c *gin.Context) {
	userID := middlewares.UserID(c)

	var books []models.Book
	err := config.DB.
		Preload("Notes").
		Preload("DailyReadings").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&books).Error
	if err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, books)
}

func ListCurrentBooks(c *gin.Context) {
	userID := middlewares.UserID(c)

	var books []models.Book
	err := config.DB.
		Preload("Notes").
		Preload("DailyReadings").
		Where("user_id = ? AND status = ?", userID, models.BookReading).
		Find(&books).Error
	if err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, books)
}

func CreateBook(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input struct {
		Title      string `json:"title" binding:"required"`
		Author     string `json:"author"`
		TotalPages int    `json:"totalPages" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book := models.Book{
		UserID:     userID,
		Title:      input.Title,
		Author:     input.Author,
		TotalPages: input.TotalPages,
		Status:     models.BookReading,
		StartDate:  time.Now(),
	}
	if err := config.DB.Create(&book).Error; err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusCreated, book)
}

func loadBook(c *gin.Context) (*models.Book, bool) {
	userID := middlewares.UserID(c)
	bookID, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}

	var book models.Book
	err := config.DB.
		Preload("Notes").
		Preload("DailyReadings").
		Where("id = ? AND user_id = ?", bookID, userID).
		First(&book).Error
	if err != nil {
		respondError(c, err, "Book")
		return nil, false
	}
	return &book, true
}

func UpdateBook(c *gin.Context) {
	book, ok := loadBook(c)
	if !ok {
		return
	}

	var input struct {
		Title       *string `json:"title"`
		Author      *string `json:"author"`
		TotalPages  *int    `json:"totalPages"`
		CurrentPage *int    `json:"currentPage"`
		Status      *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.TotalPages != nil {
		book.TotalPages = *input.TotalPages
	}
	if input.CurrentPage != nil {
		book.CurrentPage = *input.CurrentPage
	}
	if input.Status != nil {
		book.Status = *input.Status
	}

	finishBookIfDone(book)

	if err := config.DB.Save(book).Error; err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// finishBookIfDone flips the book to completed once the last page is reached.
func finishBookIfDone(book *models.Book) {
	if book.CurrentPage >= book.TotalPages && book.Status != models.BookCompleted {
		book.Status = models.BookCompleted
		now := time.Now()
		book.CompletionDate = &now
	}
}

// LogReading appends a daily reading entry and advances the current page.
func LogReading(c *gin.Context) {
	book, ok := loadBook(c)
	if !ok {
		return
	}

	var input struct {
		PagesRead int    `json:"pagesRead" binding:"required,gt=0"`
		Duration  int    `json:"duration"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book.DailyReadings = append(book.DailyReadings, models.DailyReading{
		BookID:    book.ID,
		Date:      time.Now(),
		PagesRead: input.PagesRead,
		Duration:  input.Duration,
		Notes:     input.Notes,
	})
	book.CurrentPage += input.PagesRead

	finishBookIfDone(book)

	if err := config.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(book).Error; err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, book)
}

func AddBookNote(c *gin.Context) {
	book, ok := loadBook(c)
	if !ok {
		return
	}

	var input struct {
		Page    int    `json:"page"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	note := models.BookNote{BookID: book.ID, Page: input.Page, Content: input.Content}
	if err := config.DB.Create(&note).Error; err != nil {
		respondError(c, err, "Book")
		return
	}
	book.Notes = append(book.Notes, note)

	c.JSON(http.StatusOK, book)
}

func GetReadingStats(c *gin.Context) {
	userID := middlewares.UserID(c)

	stats, err := services.GetReadingStats(userID)
	if err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func DeleteBook(c *gin.Context) {
	book, ok := loadBook(c)
	if !ok {
		return
	}

	if err := config.DB.Select("Notes", "DailyReadings").Delete(book).Error; err != nil {
		respondError(c, err, "Book")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted"})
}
