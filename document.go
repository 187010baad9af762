package pdflayout

import (
	"io"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// DocumentInfo contains basic information about a PDF document.
type DocumentInfo struct {
	PageCount int
}

// Labeler renders page labels for existing PDF documents using pdfium to
// count their pages.
type Labeler struct {
	instance   pdfium.Pdfium
	pagination Pagination
}

// NewLabeler creates a labeler with the default pagination.
func NewLabeler(instance pdfium.Pdfium) *Labeler {
	return &Labeler{
		instance:   instance,
		pagination: DefaultPagination(),
	}
}

// NewLabelerWithPagination creates a labeler with custom pagination settings.
func NewLabelerWithPagination(instance pdfium.Pdfium, pagination Pagination) *Labeler {
	return &Labeler{
		instance:   instance,
		pagination: pagination,
	}
}

// Pagination returns the labeler's pagination settings.
func (l *Labeler) Pagination() Pagination {
	return l.pagination
}

// LabelFile renders the labels for a PDF file.
func (l *Labeler) LabelFile(filePath string) ([]PageLabel, error) {
	doc, err := l.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return l.labelDocument(doc.Document)
}

// LabelBytes renders the labels for PDF bytes.
func (l *Labeler) LabelBytes(pdfBytes []byte) ([]PageLabel, error) {
	doc, err := l.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return l.labelDocument(doc.Document)
}

// LabelReader renders the labels for a PDF read from an io.ReadSeeker.
func (l *Labeler) LabelReader(reader io.ReadSeeker) ([]PageLabel, error) {
	doc, err := l.instance.OpenDocument(&requests.OpenDocument{
		FileReader: reader,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	return l.labelDocument(doc.Document)
}

// GetDocumentInfo returns basic information about a PDF without labelling it.
func (l *Labeler) GetDocumentInfo(filePath string) (*DocumentInfo, error) {
	doc, err := l.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer l.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := l.pageCount(doc.Document)
	if err != nil {
		return nil, err
	}

	return &DocumentInfo{
		PageCount: pageCount,
	}, nil
}

// labelDocument renders labels for an open document.
func (l *Labeler) labelDocument(docRef references.FPDF_DOCUMENT) ([]PageLabel, error) {
	if err := l.pagination.Validate(); err != nil {
		return nil, err
	}

	pageCount, err := l.pageCount(docRef)
	if err != nil {
		return nil, err
	}

	return l.pagination.Labels(pageCount), nil
}

func (l *Labeler) pageCount(docRef references.FPDF_DOCUMENT) (int, error) {
	pageCount, err := l.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: docRef,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get page count")
	}
	return pageCount.PageCount, nil
}
