package jenkins

import (
	"encoding/xml"
	"strings"
)

// Jenkins freestyle project layout. Element names follow the plugin class
// names Jenkins persists in config.xml.

type projectXML struct {
	XMLName          xml.Name       `xml:"project"`
	Description      string         `xml:"description"`
	KeepDependencies bool           `xml:"keepDependencies"`
	Properties       *propertiesXML `xml:"properties,omitempty"`
	SCM              scmXML         `xml:"scm"`
	CanRoam          bool           `xml:"canRoam"`
	Disabled         bool           `xml:"disabled"`
	Builders         buildersXML    `xml:"builders"`
	Publishers       publishersXML  `xml:"publishers"`
}

type scmXML struct {
	Class  string `xml:"class,attr"`
	URL    string `xml:"userRemoteConfigs>hudson.plugins.git.UserRemoteConfig>url"`
	Branch string `xml:"branches>hudson.plugins.git.BranchSpec>name"`
}

type buildersXML struct {
	Shell []commandXML `xml:"hudson.tasks.Shell,omitempty"`
	Batch []commandXML `xml:"hudson.tasks.BatchFile,omitempty"`
}

type commandXML struct {
	Command string `xml:"command"`
}

type publishersXML struct {
	JUnit             *junitXML       `xml:"hudson.tasks.junit.JUnitResultArchiver,omitempty"`
	XUnit             *xunitXML       `xml:"xunit,omitempty"`
	JSUnit            *jsunitXML      `xml:"net.praqma.jenkins.plugin.jsunit.JSUnitResultArchiver,omitempty"`
	Stash             *stashXML       `xml:"org.jenkinsci.plugins.stashNotifier.StashNotifier,omitempty"`
	DescriptionSetter *descriptionXML `xml:"hudson.plugins.descriptionsetter.DescriptionSetterPublisher,omitempty"`
}

type junitXML struct {
	TestResults string `xml:"testResults"`
}

type xunitXML struct {
	BoostTestPattern string `xml:"types>BoostTestJunitHudsonTestType>pattern"`
}

type jsunitXML struct {
	TestResults string `xml:"testResults"`
}

type stashXML struct {
	URL      string `xml:"stashServerBaseUrl"`
	Username string `xml:"stashUserName"`
	Password string `xml:"stashUserPassword"`
}

type descriptionXML struct {
	Regexp string `xml:"regexp"`
}

type propertiesXML struct {
	Parameters parametersXML `xml:"hudson.model.ParametersDefinitionProperty"`
}

type parametersXML struct {
	Choice []choiceParamXML `xml:"parameterDefinitions>hudson.model.ChoiceParameterDefinition,omitempty"`
	String []stringParamXML `xml:"parameterDefinitions>hudson.model.StringParameterDefinition,omitempty"`
}

type choiceParamXML struct {
	Name        string   `xml:"name"`
	Description string   `xml:"description"`
	Choices     []string `xml:"choices>string"`
}

type stringParamXML struct {
	Name         string `xml:"name"`
	Description  string `xml:"description"`
	DefaultValue string `xml:"defaultValue"`
}

func (g *Generator) configXML() ([]byte, error) {
	p := projectXML{
		CanRoam: true,
		SCM: scmXML{
			Class:  "hudson.plugins.git.GitSCM",
			URL:    g.repo.URL,
			Branch: g.repo.Branch,
		},
	}
	for _, c := range g.buildShellCommands {
		p.Builders.Shell = append(p.Builders.Shell, commandXML{Command: c})
	}
	for _, c := range g.buildBatchCommands {
		p.Builders.Batch = append(p.Builders.Batch, commandXML{Command: c})
	}
	if len(g.junitPatterns) > 0 {
		p.Publishers.JUnit = &junitXML{TestResults: strings.Join(g.junitPatterns, ",")}
	}
	if len(g.boosttestPatterns) > 0 {
		p.Publishers.XUnit = &xunitXML{BoostTestPattern: strings.Join(g.boosttestPatterns, ",")}
	}
	if len(g.jsunitPatterns) > 0 {
		p.Publishers.JSUnit = &jsunitXML{TestResults: strings.Join(g.jsunitPatterns, ",")}
	}
	if len(g.notifyStash) > 0 {
		p.Publishers.Stash = &stashXML{
			URL:      g.notifyStash["url"],
			Username: g.notifyStash["username"],
			Password: g.notifyStash["password"],
		}
	}
	if g.descriptionRegex != "" {
		p.Publishers.DescriptionSetter = &descriptionXML{Regexp: g.descriptionRegex}
	}
	if props := g.parameterProperties(); props != nil {
		p.Properties = props
	}

	data, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(xml.Header)+len(data)+1)
	out = append(out, xml.Header...)
	out = append(out, data...)
	out = append(out, '\n')
	return out, nil
}

func (g *Generator) parameterProperties() *propertiesXML {
	if len(g.parameters) == 0 {
		return nil
	}
	props := &propertiesXML{}
	for _, param := range g.parameters {
		name, _ := param["name"].(string)
		desc, _ := param["description"].(string)
		if choices, ok := param["choices"].([]any); ok {
			cp := choiceParamXML{Name: name, Description: desc}
			for _, c := range choices {
				if s, ok := c.(string); ok {
					cp.Choices = append(cp.Choices, s)
				}
			}
			props.Parameters.Choice = append(props.Parameters.Choice, cp)
			continue
		}
		def, _ := param["default"].(string)
		props.Parameters.String = append(props.Parameters.String, stringParamXML{
			Name:         name,
			Description:  desc,
			DefaultValue: def,
		})
	}
	return props
}
