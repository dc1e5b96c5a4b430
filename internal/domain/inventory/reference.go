package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// NextReference calcula la siguiente referencia legible para un tipo de operación,
// con formato "<tipo>/NNNN" y secuencia de 4 dígitos por tipo (servicio de dominio).
// lastReference es la referencia más reciente de ese tipo ("" si no hay ninguna);
// si el sufijo no es numérico se reinicia en 0001.
func NextReference(operationType, lastReference string) string {
	if lastReference == "" {
		return fmt.Sprintf("%s/0001", operationType)
	}
	idx := strings.LastIndex(lastReference, "/")
	suffix := lastReference[idx+1:]
	num, err := strconv.Atoi(suffix)
	if err != nil {
		return fmt.Sprintf("%s/0001", operationType)
	}
	return fmt.Sprintf("%s/%04d", operationType, num+1)
}
