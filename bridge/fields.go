package bridge

import "github.com/iw2rmb/quill/config"

// FieldNames names the host fields a Component reads and writes.
type FieldNames struct {
	Value         string
	Placeholder   string
	ExternalValue string
	FocusFlag     string
	BlurFlag      string
	ClearFlag     string
}

func DefaultFieldNames() FieldNames {
	return FieldNamesFromConfig(config.Default().Fields)
}

func FieldNamesFromConfig(c config.FieldsConfig) FieldNames {
	return FieldNames{
		Value:         c.Value,
		Placeholder:   c.Placeholder,
		ExternalValue: c.ExternalValue,
		FocusFlag:     c.FocusFlag,
		BlurFlag:      c.BlurFlag,
		ClearFlag:     c.ClearFlag,
	}
}

func (n FieldNames) withDefaults() FieldNames {
	d := DefaultFieldNames()
	if n.Value == "" {
		n.Value = d.Value
	}
	if n.Placeholder == "" {
		n.Placeholder = d.Placeholder
	}
	if n.ExternalValue == "" {
		n.ExternalValue = d.ExternalValue
	}
	if n.FocusFlag == "" {
		n.FocusFlag = d.FocusFlag
	}
	if n.BlurFlag == "" {
		n.BlurFlag = d.BlurFlag
	}
	if n.ClearFlag == "" {
		n.ClearFlag = d.ClearFlag
	}
	return n
}
