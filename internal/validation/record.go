package validation

import "fmt"

// ValidateTextField проверяет, что обязательное текстовое поле непустое
func ValidateTextField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

// ValidateAmount проверяет, что сумма неотрицательная
// Суммы хранятся как целые числа в основных единицах валюты
func ValidateAmount(name string, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%s must not be negative", name)
	}
	return nil
}
