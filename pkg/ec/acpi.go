package ec

// AcpiCallPath is the procfs file exposed by the acpi_call kernel module.
const AcpiCallPath = "/proc/acpi/call"
