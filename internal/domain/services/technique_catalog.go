package services

import "threatlens/internal/domain/models"

// techniqueCatalog is the embedded ATT&CK technique set used for keyword
// mapping. Slice order is the documented catalog iteration order and
// breaks confidence ties. A production deployment would sync this from
// the MITRE STIX feed; the embedded table keeps the pipeline self-contained.
var techniqueCatalog = []models.Technique{
	{
		ID:          "T1566",
		Name:        "Phishing",
		Tactic:      "Initial Access",
		Description: "Adversaries may send phishing messages to gain access",
		Keywords:    []string{"phishing", "spear phishing", "email", "malicious attachment", "credential harvesting"},
	},
	{
		ID:          "T1190",
		Name:        "Exploit Public-Facing Application",
		Tactic:      "Initial Access",
		Description: "Adversaries may exploit vulnerabilities in public-facing applications",
		Keywords:    []string{"exploit", "vulnerability", "CVE", "zero-day", "web application"},
	},
	{
		ID:          "T1059",
		Name:        "Command and Scripting Interpreter",
		Tactic:      "Execution",
		Description: "Adversaries may abuse command interpreters to execute commands",
		Keywords:    []string{"powershell", "cmd", "bash", "script", "command line", "shell"},
	},
	{
		ID:          "T1486",
		Name:        "Data Encrypted for Impact",
		Tactic:      "Impact",
		Description: "Adversaries may encrypt data to disrupt availability",
		Keywords:    []string{"ransomware", "encrypt", "encryption", "ransom", "locked files"},
	},
	{
		ID:          "T1071",
		Name:        "Application Layer Protocol",
		Tactic:      "Command and Control",
		Description: "Adversaries may use application layer protocols for C2",
		Keywords:    []string{"C2", "command and control", "http", "https", "DNS tunneling", "beaconing"},
	},
	{
		ID:          "T1078",
		Name:        "Valid Accounts",
		Tactic:      "Defense Evasion",
		Description: "Adversaries may use valid credentials to maintain access",
		Keywords:    []string{"credentials", "stolen password", "compromised account", "legitimate account"},
	},
	{
		ID:          "T1087",
		Name:        "Account Discovery",
		Tactic:      "Discovery",
		Description: "Adversaries may enumerate accounts to find targets",
		Keywords:    []string{"reconnaissance", "account enumeration", "user discovery", "enumerate"},
	},
	{
		ID:          "T1021",
		Name:        "Remote Services",
		Tactic:      "Lateral Movement",
		Description: "Adversaries may use remote services to move laterally",
		Keywords:    []string{"RDP", "SSH", "remote desktop", "lateral movement", "SMB"},
	},
	{
		ID:          "T1005",
		Name:        "Data from Local System",
		Tactic:      "Collection",
		Description: "Adversaries may search local systems for files of interest",
		Keywords:    []string{"data theft", "exfiltration", "stolen data", "file collection", "harvesting"},
	},
	{
		ID:          "T1567",
		Name:        "Exfiltration Over Web Service",
		Tactic:      "Exfiltration",
		Description: "Adversaries may exfiltrate data to cloud storage services",
		Keywords:    []string{"exfiltration", "data transfer", "upload", "cloud storage", "dropbox"},
	},
	{
		ID:          "T1098",
		Name:        "Account Manipulation",
		Tactic:      "Persistence",
		Description: "Adversaries may manipulate accounts to maintain access",
		Keywords:    []string{"backdoor account", "persistence", "maintain access", "account creation"},
	},
	{
		ID:          "T1055",
		Name:        "Process Injection",
		Tactic:      "Defense Evasion",
		Description: "Adversaries may inject code into processes",
		Keywords:    []string{"process injection", "DLL injection", "code injection", "memory manipulation"},
	},
	{
		ID:          "T1003",
		Name:        "OS Credential Dumping",
		Tactic:      "Credential Access",
		Description: "Adversaries may dump credentials from the OS",
		Keywords:    []string{"mimikatz", "credential dump", "LSASS", "password hash", "SAM database"},
	},
	{
		ID:          "T1068",
		Name:        "Exploitation for Privilege Escalation",
		Tactic:      "Privilege Escalation",
		Description: "Adversaries may exploit vulnerabilities to escalate privileges",
		Keywords:    []string{"privilege escalation", "elevation", "admin access", "root access", "exploit"},
	},
	{
		ID:          "T1204",
		Name:        "User Execution",
		Tactic:      "Execution",
		Description: "Adversaries may rely on user actions to execute malicious code",
		Keywords:    []string{"malicious link", "user click", "social engineering", "macro", "user execution"},
	},
}
