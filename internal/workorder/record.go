package workorder

// Record is one normalized work order. Every field is always populated:
// text fields hold a trimmed (possibly empty) string, date fields hold an
// ISODate or Absent. Records are never mutated after load.
type Record struct {
	WorkOrder     string  `json:"work_order"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	Type          string  `json:"type"`
	Department    string  `json:"department"`
	Equipment     string  `json:"equipment"`
	EquipmentDesc string  `json:"equipment_description"`
	SchedStart    ISODate `json:"sched_start"`
	OrigDue       ISODate `json:"orig_due"`
	SchedEnd      ISODate `json:"sched_end"`
	AssignedTo    string  `json:"assigned_to"`
}

// Text returns the value of a text-kind field.
func (r *Record) Text(f Field) string {
	switch f {
	case FieldWorkOrder:
		return r.WorkOrder
	case FieldDescription:
		return r.Description
	case FieldStatus:
		return r.Status
	case FieldType:
		return r.Type
	case FieldDepartment:
		return r.Department
	case FieldEquipment:
		return r.Equipment
	case FieldEquipmentDesc:
		return r.EquipmentDesc
	case FieldAssignedTo:
		return r.AssignedTo
	}
	return ""
}

// Date returns the value of a date-kind field.
func (r *Record) Date(f Field) ISODate {
	switch f {
	case FieldSchedStart:
		return r.SchedStart
	case FieldOrigDue:
		return r.OrigDue
	case FieldSchedEnd:
		return r.SchedEnd
	}
	return Absent
}

// SetText assigns a text-kind field.
func (r *Record) SetText(f Field, v string) {
	switch f {
	case FieldWorkOrder:
		r.WorkOrder = v
	case FieldDescription:
		r.Description = v
	case FieldStatus:
		r.Status = v
	case FieldType:
		r.Type = v
	case FieldDepartment:
		r.Department = v
	case FieldEquipment:
		r.Equipment = v
	case FieldEquipmentDesc:
		r.EquipmentDesc = v
	case FieldAssignedTo:
		r.AssignedTo = v
	}
}

// SetDate assigns a date-kind field.
func (r *Record) SetDate(f Field, v ISODate) {
	switch f {
	case FieldSchedStart:
		r.SchedStart = v
	case FieldOrigDue:
		r.OrigDue = v
	case FieldSchedEnd:
		r.SchedEnd = v
	}
}

// IsBlank reports whether every identity-bearing field is empty. Blank
// records are trailing spreadsheet noise and are dropped at load; a record
// with any single identity field set is kept, however sparse.
func (r *Record) IsBlank() bool {
	for _, f := range identityFields {
		if IsDateField(f) {
			if !r.Date(f).IsAbsent() {
				return false
			}
		} else if r.Text(f) != "" {
			return false
		}
	}
	return true
}

// Dataset is the ordered collection of records for the current session,
// in input row order. It is replaced wholesale on upload or clear, never
// edited in place.
type Dataset []Record
