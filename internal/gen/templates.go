package gen

import (
	"strings"
	"text/template"
)

var templateFuncs = template.FuncMap{
	"cstr": cEscape,
}

// cEscape escapes s for use inside a C string literal.
func cEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

// harnessTemplate lays out a harness. Targets provide the "header",
// "functions" and "footer" blocks.
const harnessTemplate = `{{template "header" .}}
{{range .Decls}}{{.Head}}
{{.Literal}}
{{end}}
{{template "functions" .}}{{range .Instances}}
    {{.TableType}} {{.Name}};
    {{.Name}}.{{.XArray.Setter}}_P({{.XArray.Name}});
    {{.Name}}.{{.YArray.Setter}}_P({{.YArray.Name}});
{{end}}
  for( int {{.LoopVar}}={{.Sweep.From}}; {{.LoopVar}}<={{.Sweep.To}}; {{.LoopVar}}+={{.Sweep.Step}})
  {
{{range .Samples}}    {{.TempType}} {{.Temp}}  = {{.Instance}}.f({{.Arg}});
{{end}}
    printf("{{.PrintFormat}}", {{.PrintArgs}});
{{range .FloatPrints}}    mPrintFloat({{.}});
{{end}}
{{template "footer" .}}`

const arduinoTemplate = `{{define "header"}}// Code generated by map2d-testgen. DO NOT EDIT.
//-----------------------------------------------------------------------------
// Test 2D maps
//-----------------------------------------------------------------------------
// Includes
//-----------------------------------------------------------------------------

#include "Arduino.h"
#include "Map2D3D.h"

#include <fix16.hpp>

using namespace std;

#define BAUDRATE    115200

// Stuff needed for printing
FILE                    serial_stdout;
static char             outstr[15];
#define mPrintFloat(f)  dtostrf(f, 9, 2, outstr); Serial.print(outstr);

int  serial_putchar(char c, FILE* f);
void initSerial();

//-----------------------------------------------------------------------------
// Globals
//-----------------------------------------------------------------------------
{{end}}

{{- define "functions"}}//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

void setup()
{
    initSerial();

    Serial.println();
    Serial.println( F("{{cstr .Rule}}") );
    Serial.println( F("{{cstr .Title}}") );
    Serial.println( F("{{cstr .Rule}}") );
    Serial.println( F("{{cstr .Subtitle}}") );
    Serial.println( F("{{cstr .Rule}}") );
{{end}}

{{- define "footer"}}    Serial.println();
  }

  Serial.println( F("{{cstr .WideRule}}") );
}

void loop()
{}

// Function that printf and related will use to print
int serial_putchar(char c, FILE* f) {
    if (c == '\n') serial_putchar('\r', f);
    return Serial.write(c) == 1? 0 : 1;
}

void initSerial()
{
    // Open serial port with a baud rate of BAUDRATE b/s
    Serial.begin(BAUDRATE);

    // Set up stdout
    fdev_setup_stream(&serial_stdout, serial_putchar, NULL, _FDEV_SETUP_WRITE);
    stdout = &serial_stdout;
}
{{end}}`

const hostTemplate = `{{define "header"}}// Code generated by map2d-testgen. DO NOT EDIT.
//-----------------------------------------------------------------------------
// Test 2D maps (host build)
//-----------------------------------------------------------------------------
// Includes
//-----------------------------------------------------------------------------

#include <stdio.h>
#include <string.h>
#include "Map2D3D.h"

#include <fix16.hpp>

using namespace std;

// Program memory and flash strings are plain memory on the host
#define PROGMEM
#define F( str )            str
#define setXs_P             setXs
#define setYs_P             setYs
#define setXsFromFloat_P    setXsFromFloat
#define setYsFromFloat_P    setYsFromFloat
#define mPrintFloat(f)      printf("%9.2f", (double)(f));

//-----------------------------------------------------------------------------
// Globals
//-----------------------------------------------------------------------------
{{end}}

{{- define "functions"}}//-----------------------------------------------------------------------------
// Functions
//-----------------------------------------------------------------------------

int main()
{
    printf( "%s\n", "{{cstr .Rule}}" );
    printf( "%s\n", "{{cstr .Title}}" );
    printf( "%s\n", "{{cstr .Rule}}" );
    printf( "%s\n", "{{cstr .Subtitle}}" );
    printf( "%s\n", "{{cstr .Rule}}" );
{{end}}

{{- define "footer"}}    printf( "\n" );
  }

  printf( "%s\n", "{{cstr .WideRule}}" );

  return 0;
}
{{end}}`
