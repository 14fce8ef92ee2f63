package workorder

// Field is a canonical work-order attribute. Every imported row is
// normalized into exactly this field set, whatever the export called
// its columns.
type Field string

const (
	FieldWorkOrder     Field = "work_order"
	FieldDescription   Field = "description"
	FieldStatus        Field = "status"
	FieldType          Field = "type"
	FieldDepartment    Field = "department"
	FieldEquipment     Field = "equipment"
	FieldEquipmentDesc Field = "equipment_description"
	FieldSchedStart    Field = "sched_start"
	FieldOrigDue       Field = "orig_due"
	FieldSchedEnd      Field = "sched_end"
	FieldAssignedTo    Field = "assigned_to"
)

// Kind tells how a field's raw values are interpreted.
type Kind string

const (
	KindText Kind = "text"
	KindDate Kind = "date"
)

// Fields lists every canonical field in declaration order. Header
// resolution uses this order to break ties, so earlier fields win when
// a header could match more than one.
var Fields = []Field{
	FieldWorkOrder,
	FieldDescription,
	FieldStatus,
	FieldType,
	FieldDepartment,
	FieldEquipment,
	FieldEquipmentDesc,
	FieldSchedStart,
	FieldOrigDue,
	FieldSchedEnd,
	FieldAssignedTo,
}

var fieldKinds = map[Field]Kind{
	FieldWorkOrder:     KindText,
	FieldDescription:   KindText,
	FieldStatus:        KindText,
	FieldType:          KindText,
	FieldDepartment:    KindText,
	FieldEquipment:     KindText,
	FieldEquipmentDesc: KindText,
	FieldSchedStart:    KindDate,
	FieldOrigDue:       KindDate,
	FieldSchedEnd:      KindDate,
	FieldAssignedTo:    KindText,
}

var fieldLabels = map[Field]string{
	FieldWorkOrder:     "Work Order",
	FieldDescription:   "Description",
	FieldStatus:        "Status",
	FieldType:          "Type",
	FieldDepartment:    "Department",
	FieldEquipment:     "Equipment",
	FieldEquipmentDesc: "Equipment Description",
	FieldSchedStart:    "Sched. Start",
	FieldOrigDue:       "Orig. Due",
	FieldSchedEnd:      "Sched. End",
	FieldAssignedTo:    "Assigned To",
}

// identityFields decide whether a row is real data or a blank trailer.
// A record with all of these empty is dropped at load time.
var identityFields = []Field{
	FieldWorkOrder,
	FieldDescription,
	FieldEquipment,
	FieldAssignedTo,
	FieldSchedStart,
	FieldOrigDue,
	FieldSchedEnd,
}

// KindOf returns the field's kind, defaulting to text for unknown fields.
func KindOf(f Field) Kind {
	if k, ok := fieldKinds[f]; ok {
		return k
	}
	return KindText
}

// LabelOf returns the display label the SPA shows for a field.
func LabelOf(f Field) string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// IsDateField reports whether f holds a calendar date.
func IsDateField(f Field) bool {
	return KindOf(f) == KindDate
}

// Valid reports whether f is one of the canonical fields.
func Valid(f Field) bool {
	_, ok := fieldKinds[f]
	return ok
}

// DateFields returns the date-kind fields in declaration order.
func DateFields() []Field {
	out := make([]Field, 0, 3)
	for _, f := range Fields {
		if IsDateField(f) {
			out = append(out, f)
		}
	}
	return out
}
