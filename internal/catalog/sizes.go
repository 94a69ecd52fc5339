package catalog

import (
	"fmt"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/retail-inventory-admin/internal/errors"
	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/models"
)

// SizeRow is one row of the size table as typed: stock and price stay raw
// strings until the product is built.
type SizeRow struct {
	Size  models.Size `json:"size"`
	Stock string      `json:"stock"`
	Price string      `json:"price"`
}

func DefaultRows() []SizeRow {
	return []SizeRow{{Size: models.SizeNone}}
}

type AllocationStatus int

const (
	AllocationExact AllocationStatus = iota
	AllocationAutoDistribute
	AllocationOver
	AllocationUnder
)

func (s AllocationStatus) String() string {
	switch s {
	case AllocationExact:
		return "exact"
	case AllocationAutoDistribute:
		return "auto_distribute"
	case AllocationOver:
		return "over"
	case AllocationUnder:
		return "under"
	default:
		return "unknown"
	}
}

func (s AllocationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Policy decides what happens when some, but not all, of the base stock is
// assigned to sizes.
type Policy int

const (
	BlockUnderAllocation Policy = iota
	AllowUnderAllocation
)

type Allocation struct {
	Base      int              `json:"base_stock"`
	Total     int              `json:"total_size_stock"`
	Remaining int              `json:"remaining"`
	Status    AllocationStatus `json:"status" swaggertype:"string" enums:"exact,auto_distribute,over,under"`
}

// parseStock reads the leading integer of raw, the way the form's number
// field is read: "3.5" and "3abc" give 3, "-3" stays -3 and anything without
// leading digits gives 0. Negative counts are kept so validation rejects them.
func parseStock(raw string) int {
	raw = strings.TrimSpace(raw)

	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}

	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}

	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}

	return n
}

func TotalSizeStock(rows []SizeRow) int {
	total := 0

	for _, row := range rows {
		total += parseStock(row.Stock)
	}

	return total
}

// Remaining is a display hint and never goes below zero.
func Remaining(baseStock int, rows []SizeRow) int {
	return max(0, baseStock-TotalSizeStock(rows))
}

// IsValid accepts an exact split, or no split at all so the server
// distributes the base stock itself.
func IsValid(baseStock int, rows []SizeRow) bool {
	total := TotalSizeStock(rows)

	return total == baseStock || total == 0
}

func CheckAllocation(baseStock int, rows []SizeRow) Allocation {
	total := TotalSizeStock(rows)

	allocation := Allocation{
		Base:      baseStock,
		Total:     total,
		Remaining: max(0, baseStock-total),
	}

	switch {
	case total == baseStock:
		allocation.Status = AllocationExact
	case total == 0:
		allocation.Status = AllocationAutoDistribute
	case total > baseStock:
		allocation.Status = AllocationOver
	default:
		allocation.Status = AllocationUnder
	}

	return allocation
}

// Err returns the blocking error for this allocation under policy, if any.
// Over-allocation is always blocked.
func (a Allocation) Err(policy Policy) error {
	switch a.Status {
	case AllocationOver:
		return appErrors.SizeStockMismatchError(
			fmt.Sprintf("Total size stock (%d) exceeds base stock (%d)", a.Total, a.Base),
		).WithDetail(fmt.Sprintf("reduce size stock by %d", a.Total-a.Base))
	case AllocationUnder:
		if policy == AllowUnderAllocation {
			return nil
		}

		return appErrors.SizeStockMismatchError(
			fmt.Sprintf("Total size stock (%d) is less than base stock (%d)", a.Total, a.Base),
		).WithDetail(fmt.Sprintf("%d units are not assigned to a size", a.Remaining))
	default:
		return nil
	}
}

// BuildSizes turns form rows into the sizes submitted with the product. Rows
// without a size are dropped and a blank or unparsable price becomes the
// product price. Stock is read as its leading integer, blank being zero.
func BuildSizes(productPrice float64, rows []SizeRow) []models.ProductSize {
	sizes := make([]models.ProductSize, 0, len(rows))

	for _, row := range rows {
		if strings.TrimSpace(string(row.Size)) == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64)
		if err != nil {
			price = productPrice
		}

		sizes = append(sizes, models.ProductSize{
			Size:  row.Size,
			Stock: parseStock(row.Stock),
			Price: price,
		})
	}

	return sizes
}
