package commission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacySheet = `{
	"id": "66b1f",
	"monthYear": "2024-02",
	"branch": "Main",
	"department": "Sales",
	"commissionBranch": "cb-1",
	"type": "sale_commission",
	"data": [
		{"employeeId": "e1", "employeeName": "Ali", "saleBranch": "F-6", "saleAmount": "1000", "commission": 20, "totalCommission": 150, "totalData": 0},
		{"id": "e2", "name": "undefined", "saleBranch": "F-6", "totalData": 90, "totalCommission": 80},
		{"id": "e3", "name": null, "saleBranch": "G-9", "saleAmount": "n/a"}
	]
}`

func TestDecodeNormalizesLegacyRows(t *testing.T) {
	rec, err := Decode([]byte(legacySheet), DirectoryMap{"e2": "Sara"})
	require.NoError(t, err)

	assert.Equal(t, "2024-02", rec.MonthYear)
	assert.Equal(t, "cb-1", rec.CommissionBranch)
	require.Len(t, rec.Rows, 3)

	assert.Equal(t, "e1", rec.Rows[0].EmployeeID)
	assert.Equal(t, "Ali", rec.Rows[0].EmployeeName)
	assert.Equal(t, 1000.0, rec.Rows[0].SaleAmount)
	assert.Equal(t, 150.0, rec.Rows[0].TotalCommission)

	assert.Equal(t, "Sara", rec.Rows[1].EmployeeName)
	assert.Equal(t, 90.0, rec.Rows[1].TotalCommission)

	assert.Equal(t, "Unknown", rec.Rows[2].EmployeeName)
	assert.Equal(t, 0.0, rec.Rows[2].SaleAmount)
}

func TestDecodeWithoutDirectory(t *testing.T) {
	rec, err := Decode([]byte(legacySheet), nil)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", rec.Rows[1].EmployeeName)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"data": [`), nil)
	require.Error(t, err)
}

func TestEncodeWritesBothTotalKeys(t *testing.T) {
	rec := Record{
		MonthYear:        "2024-03",
		Branch:           "Main",
		CommissionBranch: "cb-1",
		Rows: []Row{{
			EmployeeID:      "e1",
			EmployeeName:    "Ali",
			SaleBranch:      "F-6",
			SaleAmount:      1000,
			TotalCommission: 125.5,
		}},
	}

	data, err := Encode(rec)
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, TypeSaleCommission, stored["type"])

	rows, ok := stored["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, 125.5, row["totalData"])
	assert.Equal(t, 125.5, row["totalCommission"])
	assert.Equal(t, "e1", row["id"])
	assert.Equal(t, "Ali", row["name"])
	assert.NotContains(t, row, "employeeId")
	assert.NotContains(t, row, "employeeName")

	back, err := Decode(data, nil)
	require.NoError(t, err)
	assert.Equal(t, rec.Rows, back.Rows)
}

func TestEncodeEmptyRecord(t *testing.T) {
	data, err := Encode(Record{MonthYear: "2024-03"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[]`)
}
