//go:build windows

package reg

//go:generate go run golang.org/x/sys/windows/mkwinsyscall -output zsyscall_windows.go syscall_windows.go

//sys	regOpenKeyEx(key windows.Handle, subkey *uint16, options uint32, desiredAccess uint32, result *windows.Handle) (regerrno error) = advapi32.RegOpenKeyExW
//sys	regCreateKeyEx(key windows.Handle, subkey *uint16, reserved uint32, class *uint16, options uint32, desired uint32, sa *windows.SecurityAttributes, result *windows.Handle, disposition *uint32) (regerrno error) = advapi32.RegCreateKeyExW
//sys	regCloseKey(key windows.Handle) (regerrno error) = advapi32.RegCloseKey
//sys	regDeleteKey(key windows.Handle, subkey *uint16) (regerrno error) = advapi32.RegDeleteKeyW
//sys	regDeleteTree(key windows.Handle, subkey *uint16) (regerrno error) = advapi32.RegDeleteTreeW
//sys	regDeleteValue(key windows.Handle, name *uint16) (regerrno error) = advapi32.RegDeleteValueW
//sys	regSetValueEx(key windows.Handle, valueName *uint16, reserved uint32, vtype uint32, buf *byte, bufsize uint32) (regerrno error) = advapi32.RegSetValueExW
//sys	regQueryValueEx(key windows.Handle, name *uint16, reserved *uint32, valtype *uint32, buf *byte, buflen *uint32) (regerrno error) = advapi32.RegQueryValueExW
//sys	regEnumKeyEx(key windows.Handle, index uint32, name *uint16, nameLen *uint32, reserved *uint32, class *uint16, classLen *uint32, lastWriteTime *windows.Filetime) (regerrno error) = advapi32.RegEnumKeyExW
//sys	regEnumValue(key windows.Handle, index uint32, name *uint16, nameLen *uint32, reserved *uint32, valtype *uint32, buf *byte, buflen *uint32) (regerrno error) = advapi32.RegEnumValueW
//sys	regQueryInfoKey(key windows.Handle, class *uint16, classLen *uint32, reserved *uint32, subkeyCount *uint32, maxSubkeyLen *uint32, maxClassLen *uint32, valueCount *uint32, maxValueNameLen *uint32, maxValueLen *uint32, saLen *uint32, lastWriteTime *windows.Filetime) (regerrno error) = advapi32.RegQueryInfoKeyW
//sys	regFlushKey(key windows.Handle) (regerrno error) = advapi32.RegFlushKey
//sys	expandEnvironmentStrings(src *uint16, dst *uint16, size uint32) (n uint32, err error) = kernel32.ExpandEnvironmentStringsW
