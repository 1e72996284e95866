// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser -> checker) and the expression evaluator.
// They guard against panics and hangs on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet и
// прогоняют их через лексер/парсер/проверку объявлений.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
