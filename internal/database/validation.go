package database

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// Validation is a GORM plugin that runs the model field validators before
// every create and update, so a bad record never reaches the database.
type Validation struct {
	validate *validator.Validate
}

var _ gorm.Plugin = (*Validation)(nil)

// NewValidation creates the plugin for the given schema limits
func NewValidation(limits models.Limits) *Validation {
	return &Validation{validate: models.NewValidator(limits)}
}

func (v *Validation) Name() string {
	return "foodgram:validation"
}

func (v *Validation) Initialize(db *gorm.DB) error {
	err := db.Callback().Create().
		After("gorm:before_create").
		Before("gorm:save_before_associations").
		Register("foodgram:validate_create", v.check)
	if err != nil {
		return err
	}
	return db.Callback().Update().
		After("gorm:before_update").
		Before("gorm:save_before_associations").
		Register("foodgram:validate_update", v.check)
}

func (v *Validation) check(tx *gorm.DB) {
	stmt := tx.Statement
	if tx.Error != nil || stmt.Schema == nil {
		return
	}
	// Many2many join rows use a generated, unnamed struct type
	if stmt.Schema.ModelType.Name() == "" {
		return
	}

	var err error
	switch dest := stmt.Dest.(type) {
	case map[string]interface{}:
		err = v.validateColumns(stmt, dest)
	case *map[string]interface{}:
		err = v.validateColumns(stmt, *dest)
	case []map[string]interface{}:
		for _, row := range dest {
			if err = v.validateColumns(stmt, row); err != nil {
				break
			}
		}
	default:
		if separateDest(stmt) {
			err = v.validateChanges(stmt)
		} else {
			err = v.validateRecords(stmt)
		}
	}
	if err != nil {
		_ = tx.AddError(err)
	}
}

func (v *Validation) validateRecords(stmt *gorm.Statement) error {
	rv := stmt.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := v.validateValue(stmt, rv.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		return v.validateValue(stmt, rv)
	}
	return nil
}

// validateChanges handles Model(x).Updates(struct): only the fields the
// update writes are checked, using the new values.
func (v *Validation) validateChanges(stmt *gorm.Statement) error {
	dv := reflect.Indirect(reflect.ValueOf(stmt.Dest))
	if dv.Kind() != reflect.Struct || dv.Type() != stmt.Schema.ModelType {
		return nil
	}

	selected, restricted := stmt.SelectAndOmitColumns(false, true)
	columns := make(map[string]interface{})
	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" || field.PrimaryKey || !field.Updatable {
			continue
		}
		picked, listed := selected[field.DBName]
		if (listed && !picked) || (!listed && restricted) {
			continue
		}
		// Zero values are only written when explicitly selected
		value, zero := field.ValueOf(stmt.Context, dv)
		if zero && !listed {
			continue
		}
		columns[field.DBName] = value
	}
	return v.validateColumns(stmt, columns)
}

// validateColumns checks column values written by Update, UpdateColumn or
// a map. Values that are SQL expressions are left to the database.
func (v *Validation) validateColumns(stmt *gorm.Statement, columns map[string]interface{}) error {
	record := reflect.New(stmt.Schema.ModelType).Elem()
	names := make([]string, 0, len(columns))
	for column, value := range columns {
		field := stmt.Schema.LookUpField(column)
		if field == nil || len(field.StructField.Index) == 0 {
			continue
		}
		if assign(record.FieldByIndex(field.StructField.Index), value) {
			names = append(names, field.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return v.wrap(stmt, v.validate.StructPartial(record.Interface(), names...))
}

func (v *Validation) validateValue(stmt *gorm.Statement, rv reflect.Value) error {
	rv = reflect.Indirect(rv)
	if rv.Kind() != reflect.Struct || !rv.CanInterface() {
		return nil
	}
	return v.wrap(stmt, v.validate.Struct(rv.Interface()))
}

func (v *Validation) wrap(stmt *gorm.Statement, err error) error {
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return &models.ValidationError{Table: stmt.Table, Err: err}
}

// separateDest reports whether the statement writes values from a struct
// other than its model, as Model(x).Updates(y) does.
func separateDest(stmt *gorm.Statement) bool {
	mv := reflect.ValueOf(stmt.Model)
	dv := reflect.ValueOf(stmt.Dest)
	if mv.Kind() != reflect.Ptr || !dv.IsValid() {
		return false
	}
	if dv.Kind() == reflect.Ptr {
		return dv.Pointer() != mv.Pointer()
	}
	return true
}

// assign stores value in field when the types line up. Numbers are
// converted between widths.
func assign(field reflect.Value, value interface{}) bool {
	rv := reflect.ValueOf(value)
	for rv.IsValid() && rv.Kind() == reflect.Ptr && rv.Type() != field.Type() {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}
	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case isNumber(rv.Kind()) && isNumber(field.Kind()):
		field.Set(rv.Convert(field.Type()))
	default:
		return false
	}
	return true
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
